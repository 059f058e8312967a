package morphgnt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// bookNames lists the New Testament books by MorphGNT book number
// (1-based; index 0 unused).
var bookNames = [...]string{
	"",
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians",
	"1 Timothy", "2 Timothy", "Titus", "Philemon", "Hebrews",
	"James", "1 Peter", "2 Peter", "1 John", "2 John",
	"3 John", "Jude", "Revelation",
}

// Ref locates a word in the corpus by book, chapter and verse.
type Ref struct {
	Book    int
	Chapter int
	Verse   int
}

// ParseRef decodes the six-digit BCV code that opens every corpus
// line: two digits each of book, chapter and verse, e.g. "010101".
func ParseRef(s string) (Ref, error) {
	if len(s) != 6 {
		return Ref{}, fmt.Errorf("reference %q: want 6 digits", s)
	}
	var nums [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(s[i*2 : i*2+2])
		if err != nil {
			return Ref{}, fmt.Errorf("reference %q: %w", s, err)
		}
		nums[i] = n
	}
	return Ref{Book: nums[0], Chapter: nums[1], Verse: nums[2]}, nil
}

// BookName returns the English book name, or "" for an out-of-range
// book number.
func (r Ref) BookName() string {
	if r.Book < 1 || r.Book >= len(bookNames) {
		return ""
	}
	return bookNames[r.Book]
}

func (r Ref) String() string {
	name := r.BookName()
	if name == "" {
		name = fmt.Sprintf("book %d", r.Book)
	}
	return fmt.Sprintf("%s %d:%d", name, r.Chapter, r.Verse)
}

// Word is one decoded line of a MorphGNT corpus file.
type Word struct {
	// Ref is the book/chapter/verse location.
	Ref Ref
	// Tag is the raw tag handed to ParseTag: the part-of-speech and
	// parse-code columns joined by a space.
	Tag string
	// Parse is the decoded grammar of the word.
	Parse Parse
	// Text is the word as it appears in the text, punctuation included.
	Text string
	// Form is the word with punctuation stripped.
	Form string
	// Norm is the normalized form.
	Norm string
	// Lemma is the dictionary headword.
	Lemma string
}

// ParseLine decodes one corpus line. Each line carries seven
// space-separated columns:
//
//	010101 N- ----NSF- Βίβλος Βίβλος Βίβλος βίβλος
//
// reference, part-of-speech code, parse code, text, word, normalized
// form, lemma.
func ParseLine(line string) (Word, error) {
	cols := strings.Fields(line)
	if len(cols) != 7 {
		return Word{}, fmt.Errorf("want 7 columns, got %d", len(cols))
	}
	ref, err := ParseRef(cols[0])
	if err != nil {
		return Word{}, err
	}
	tag := cols[1] + " " + cols[2]
	parse, err := ParseTag(tag)
	if err != nil {
		return Word{}, err
	}
	return Word{
		Ref:   ref,
		Tag:   tag,
		Parse: parse,
		Text:  cols[3],
		Form:  cols[4],
		Norm:  cols[5],
		Lemma: cols[6],
	}, nil
}

// ReadWords decodes a whole corpus stream, one word per line. Blank
// lines are skipped. The first malformed line aborts the read with an
// error naming the line number; callers wanting to skip bad lines
// should scan themselves and use ParseLine.
func ReadWords(r io.Reader) ([]Word, error) {
	var words []Word
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		w, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFile reads and decodes one MorphGNT corpus file.
func LoadFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
