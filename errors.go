package morphgnt

import (
	"errors"
	"fmt"
)

// Sentinel decode errors. ParseTag wraps these in a *TagError, so
// callers can classify failures with errors.Is.
var (
	// ErrIncomplete indicates the tag contained no part-of-speech token.
	ErrIncomplete = errors.New("tag has no part-of-speech token")
	// ErrUnknownPartOfSpeech indicates the part-of-speech token is not
	// in the MorphGNT code vocabulary.
	ErrUnknownPartOfSpeech = errors.New("unknown part-of-speech code")
	// ErrUnknownPerson indicates an unrecognised person code at
	// morphology offset 0.
	ErrUnknownPerson = errors.New("unknown person code")
	// ErrUnknownTenseForm indicates an unrecognised tense-form code at
	// morphology offset 1.
	ErrUnknownTenseForm = errors.New("unknown tense-form code")
	// ErrUnknownVoice indicates an unrecognised voice code at
	// morphology offset 2.
	ErrUnknownVoice = errors.New("unknown voice code")
	// ErrUnrecognisedValue indicates an unrecognised code at the
	// mood/degree position, morphology offset 3.
	ErrUnrecognisedValue = errors.New("unrecognised mood or degree code")
	// ErrUnknownCase indicates an unrecognised case code at morphology
	// offset 4.
	ErrUnknownCase = errors.New("unknown case code")
	// ErrUnknownNumber indicates an unrecognised number code at
	// morphology offset 5.
	ErrUnknownNumber = errors.New("unknown number code")
	// ErrUnknownGender indicates an unrecognised gender code at
	// morphology offset 6.
	ErrUnknownGender = errors.New("unknown gender code")
)

// TagError describes a tag decode failure: which sentinel kind it is,
// the offending token or byte, and where in the raw tag it sits. It is
// the structured context a diagnostics sink needs; the decoder itself
// never logs.
type TagError struct {
	// Tag is the raw tag string being decoded.
	Tag string
	// Token is the offending part-of-speech token, when the failure is
	// a classification failure.
	Token string
	// Char is the offending field byte, when the failure is a
	// morphology-field failure.
	Char byte
	// Offset is the byte offset of the offending token or byte in Tag.
	Offset int
	// Err is the sentinel error identifying the failure kind.
	Err error
}

func (e *TagError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%v %q in tag %q", e.Err, e.Token, e.Tag)
	}
	if e.Char != 0 {
		return fmt.Sprintf("%v %q at offset %d in tag %q", e.Err, e.Char, e.Offset, e.Tag)
	}
	return fmt.Sprintf("%v in tag %q", e.Err, e.Tag)
}

func (e *TagError) Unwrap() error {
	return e.Err
}
