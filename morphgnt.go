// Package morphgnt decodes the fixed-column morphological tags used by
// the SBL MorphGNT dataset for the Greek New Testament into typed
// grammatical attributes.
//
// A tag is a short ASCII string with two logical parts: a
// part-of-speech code (e.g. "N-", "RA", "V-") and an optional
// fixed-width block of seven single-character morphology fields
// (person, tense-form, voice, mood, case, number, gender):
//
//	V- 1AAI-S--
//	N- ----DSF-
//	A- ----DPM-
//
// ParseTag is the entry point; the corpus-file helpers in this package
// build on it to decode whole MorphGNT source files.
package morphgnt

// ParseTag decodes a single MorphGNT tag string into a Parse record.
//
// It first classifies the part of speech from the leading code token,
// then decodes the seven morphology fields at fixed offsets when a
// full-width block follows. A tag that stops after the part-of-speech
// code is valid: the remaining fields stay at their unknown defaults.
//
// On failure it returns the zero Parse and a *TagError wrapping one of
// the sentinel errors in this package; no partial record is returned.
func ParseTag(tag string) (Parse, error) {
	var p Parse
	rest, err := classifyPOS(&p, tag)
	if err != nil {
		return Parse{}, err
	}
	if err := decodeMorphology(&p, tag, rest); err != nil {
		return Parse{}, err
	}
	return p, nil
}
