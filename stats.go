package morphgnt

// Stats aggregates attribute frequencies over a stream of decoded
// words.
type Stats struct {
	// Words is the total number of words counted.
	Words int
	// ByPOS counts words per part of speech.
	ByPOS map[PartOfSpeech]int
	// ByTenseForm counts verb forms per tense-form.
	ByTenseForm map[TenseForm]int
	// ByCase counts declined forms per case.
	ByCase map[Case]int
}

// NewStats returns an empty aggregation.
func NewStats() *Stats {
	return &Stats{
		ByPOS:       make(map[PartOfSpeech]int),
		ByTenseForm: make(map[TenseForm]int),
		ByCase:      make(map[Case]int),
	}
}

// Add counts one word. Unknown tense-forms and cases are not counted
// in their maps; every word counts toward Words and ByPOS.
func (s *Stats) Add(w Word) {
	s.Words++
	s.ByPOS[w.Parse.POS]++
	if w.Parse.TenseForm != TenseUnknown {
		s.ByTenseForm[w.Parse.TenseForm]++
	}
	if w.Parse.Case != CaseUnknown {
		s.ByCase[w.Parse.Case]++
	}
}

// AddAll counts every word in the slice.
func (s *Stats) AddAll(words []Word) {
	for _, w := range words {
		s.Add(w)
	}
}
