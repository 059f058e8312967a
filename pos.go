package morphgnt

// maxPOSToken caps the part-of-speech token length. MorphGNT codes are
// one or two bytes; the bound only guards against garbage input.
const maxPOSToken = 8

// posEntry is the result of classifying one part-of-speech code.
// Some codes imply more than the category: the first- and
// second-declension noun codes fix the gender, and the indefinite
// relative code sets the indefinite flag.
type posEntry struct {
	pos        PartOfSpeech
	gender     Gender
	indefinite bool
}

// posTable maps each part-of-speech code token to its classification.
var posTable = buildPOSTable()

func buildPOSTable() map[string]posEntry {
	t := map[string]posEntry{
		"N":  {pos: POSNoun},
		"N1": {pos: POSNoun, gender: GenderFeminine},
		"N2": {pos: POSNoun, gender: GenderMasculine},
		"N3": {pos: POSNoun},
		"A":  {pos: POSAdjective},
		"A1": {pos: POSAdjective},
		"A3": {pos: POSAdjective},
		"RA": {pos: POSArticle},
		"RD": {pos: POSDemonstrativePronoun},
		"RI": {pos: POSInterrogativePronoun},
		"RP": {pos: POSPossessivePronoun},
		"RR": {pos: POSRelativePronoun},
		"RX": {pos: POSRelativePronoun, indefinite: true},
		"C":  {pos: POSConjunction},
		"X":  {pos: POSParticle},
		"I":  {pos: POSInterjection},
		"M":  {pos: POSNumeral},
		"P":  {pos: POSPreposition},
		"D":  {pos: POSAdverb},
	}
	// Verb subclass codes all collapse to plain verb.
	t["V"] = posEntry{pos: POSVerb}
	for c := byte('1'); c <= '9'; c++ {
		t["V"+string(c)] = posEntry{pos: POSVerb}
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t["V"+string(c)] = posEntry{pos: POSVerb}
	}
	return t
}

// isSeparator reports whether c terminates a part-of-speech token.
func isSeparator(c byte) bool {
	return c == ' ' || c == '-' || c == '+'
}

// classifyPOS reads the part-of-speech token from the front of tag and
// applies the code table to p. It returns the offset of the first byte
// after the token and its optional single trailing '-'.
func classifyPOS(p *Parse, tag string) (int, error) {
	i := 0
	for i < len(tag) && isSeparator(tag[i]) {
		i++
	}
	start := i
	for i < len(tag) && !isSeparator(tag[i]) {
		i++
	}
	token := tag[start:i]
	if token == "" {
		return 0, &TagError{Tag: tag, Err: ErrIncomplete}
	}
	if len(token) > maxPOSToken {
		return 0, &TagError{Tag: tag, Token: token, Offset: start, Err: ErrUnknownPartOfSpeech}
	}
	entry, ok := posTable[token]
	if !ok {
		return 0, &TagError{Tag: tag, Token: token, Offset: start, Err: ErrUnknownPartOfSpeech}
	}
	p.POS = entry.pos
	p.Gender = entry.gender
	p.Indefinite = entry.indefinite
	// A single '-' may pad the code out to two columns.
	if i < len(tag) && tag[i] == '-' {
		i++
	}
	return i, nil
}
