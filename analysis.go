package morphgnt

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech int

const (
	POSUnknown PartOfSpeech = iota
	POSNoun
	POSComparativeNoun
	POSSuperlativeNoun
	POSAdjective
	POSComparativeAdjective
	POSSuperlativeAdjective
	POSArticle
	// POSInterrogativePronoun covers both interrogative and indefinite
	// readings: the source code "RI" does not distinguish them.
	POSInterrogativePronoun
	POSDemonstrativePronoun
	POSPossessivePronoun
	POSRelativePronoun
	POSConjunction
	POSParticle
	POSInterjection
	POSNumeral
	POSPreposition
	POSAdverb
	POSComparativeAdverb
	POSSuperlativeAdverb
	POSVerb
)

// Person is the grammatical person of a verb form.
type Person int

const (
	PersonUnknown Person = iota
	PersonFirst
	PersonSecond
	PersonThird
)

// TenseForm is the tense/aspect stem of a verb form.
type TenseForm int

const (
	TenseUnknown TenseForm = iota
	TensePresent
	TenseFuture
	TenseAorist
	TenseImperfect
	TensePerfect
	TensePluperfect
)

// Voice is the grammatical voice of a verb form.
type Voice int

const (
	VoiceUnknown Voice = iota
	VoiceActive
	VoiceMiddle
	VoicePassive
)

// Mood is the mood of a verb form. It is only meaningful when the part
// of speech is a verb; on other classes the same tag position carries
// the indeclinable flag and the comparison degree instead.
type Mood int

const (
	MoodUnknown Mood = iota
	MoodIndicative
	MoodSubjunctive
	MoodOptative
	MoodImperative
	MoodInfinitive
	MoodParticiple
)

// Case is the grammatical case of a declined form.
type Case int

const (
	CaseUnknown Case = iota
	CaseNominative
	CaseGenitive
	CaseDative
	CaseAccusative
	CaseVocative
)

// Number is the grammatical number of a form.
type Number int

const (
	NumberUnknown Number = iota
	NumberSingular
	NumberPlural
)

// Gender is the grammatical gender of a declined form.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMasculine
	GenderFeminine
	GenderNeuter
)

// Parse holds the decoded grammatical attributes of one tag.
//
// The zero value has every attribute unknown and both flags false;
// decoding only ever sets fields, it never resets them. A Parse is a
// plain value with no hidden state, so records may be compared with ==
// and shared freely between goroutines.
type Parse struct {
	// POS is the part of speech. It is the one attribute guaranteed
	// non-unknown on a successful decode.
	POS PartOfSpeech
	// Person is the verb person (offset 0 of the morphology block).
	Person Person
	// TenseForm is the tense/aspect stem (offset 1).
	TenseForm TenseForm
	// Voice is the verb voice (offset 2).
	Voice Voice
	// Mood is the verb mood (offset 3, verbs only).
	Mood Mood
	// Case is the grammatical case (offset 4).
	Case Case
	// Number is the grammatical number (offset 5).
	Number Number
	// Gender is the grammatical gender (offset 6). Declension-class
	// part-of-speech codes (N1, N2) pre-set it; an explicit gender
	// letter overwrites that.
	Gender Gender
	// Indeclinable marks a non-verb flagged with the "I" code at the
	// mood position.
	Indeclinable bool
	// Indefinite marks the indefinite relative pronoun code "RX".
	Indefinite bool
}
