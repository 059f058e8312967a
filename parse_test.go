package morphgnt

import (
	"errors"
	"testing"
)

func TestParseTagVerbAorist(t *testing.T) {
	p, err := ParseTag("V- 1AAI-S--")
	if err != nil {
		t.Fatalf("ParseTag: %v", err)
	}
	want := Parse{
		POS:       POSVerb,
		Person:    PersonFirst,
		TenseForm: TenseAorist,
		Voice:     VoiceActive,
		Mood:      MoodIndicative,
		Number:    NumberSingular,
	}
	if p != want {
		t.Errorf("ParseTag(\"V- 1AAI-S--\") = %+v, want %+v", p, want)
	}
}

func TestParseTagScenarios(t *testing.T) {
	tests := []struct {
		tag  string
		want Parse
	}{
		{"A- ----DPM-", Parse{
			POS:    POSAdjective,
			Case:   CaseDative,
			Number: NumberPlural,
			Gender: GenderMasculine,
		}},
		{"N- ----DSF-", Parse{
			POS:    POSNoun,
			Case:   CaseDative,
			Number: NumberSingular,
			Gender: GenderFeminine,
		}},
		{"V- -PAPNSM-", Parse{
			POS:       POSVerb,
			TenseForm: TensePresent,
			Voice:     VoiceActive,
			Mood:      MoodParticiple,
			Case:      CaseNominative,
			Number:    NumberSingular,
			Gender:    GenderMasculine,
		}},
		{"RX ----DPM-", Parse{
			POS:        POSRelativePronoun,
			Indefinite: true,
			Case:       CaseDative,
			Number:     NumberPlural,
			Gender:     GenderMasculine,
		}},
		{"RA ----GSN-", Parse{
			POS:    POSArticle,
			Case:   CaseGenitive,
			Number: NumberSingular,
			Gender: GenderNeuter,
		}},
		{"V- 3AAI-P--", Parse{
			POS:       POSVerb,
			Person:    PersonThird,
			TenseForm: TenseAorist,
			Voice:     VoiceActive,
			Mood:      MoodIndicative,
			Number:    NumberPlural,
		}},
		// perfect and pluperfect both have two source letters
		{"V- 3XAI-S--", Parse{
			POS:       POSVerb,
			Person:    PersonThird,
			TenseForm: TensePerfect,
			Voice:     VoiceActive,
			Mood:      MoodIndicative,
			Number:    NumberSingular,
		}},
		{"V- 3EAI-S--", Parse{
			POS:       POSVerb,
			Person:    PersonThird,
			TenseForm: TensePerfect,
			Voice:     VoiceActive,
			Mood:      MoodIndicative,
			Number:    NumberSingular,
		}},
		{"V- 3LAI-S--", Parse{
			POS:       POSVerb,
			Person:    PersonThird,
			TenseForm: TensePluperfect,
			Voice:     VoiceActive,
			Mood:      MoodIndicative,
			Number:    NumberSingular,
		}},
		{"V- 3YAI-S--", Parse{
			POS:       POSVerb,
			Person:    PersonThird,
			TenseForm: TensePluperfect,
			Voice:     VoiceActive,
			Mood:      MoodIndicative,
			Number:    NumberSingular,
		}},
		// 'U' tense and 'A' number carry no information
		{"V- -UA--A--", Parse{
			POS:   POSVerb,
			Voice: VoiceActive,
		}},
		// declension-class codes pre-set the gender
		{"N1", Parse{POS: POSNoun, Gender: GenderFeminine}},
		{"N2", Parse{POS: POSNoun, Gender: GenderMasculine}},
		// an explicit gender letter overrides the declension default
		{"N1 ----NSM-", Parse{
			POS:    POSNoun,
			Case:   CaseNominative,
			Number: NumberSingular,
			Gender: GenderMasculine,
		}},
		// '.' is a placeholder like '-' and ' '
		{"V- .PAI.P..", Parse{
			POS:       POSVerb,
			TenseForm: TensePresent,
			Voice:     VoiceActive,
			Mood:      MoodIndicative,
			Number:    NumberPlural,
		}},
	}
	for _, tt := range tests {
		p, err := ParseTag(tt.tag)
		if err != nil {
			t.Errorf("ParseTag(%q): %v", tt.tag, err)
			continue
		}
		if p != tt.want {
			t.Errorf("ParseTag(%q) = %+v, want %+v", tt.tag, p, tt.want)
		}
	}
}

func TestParseTagShortTags(t *testing.T) {
	// A tag consisting only of a part-of-speech code, or with a
	// morphology remainder shorter than the full block, decodes to a
	// record with every other attribute at its default.
	tests := []struct {
		tag  string
		want PartOfSpeech
	}{
		{"C", POSConjunction},
		{"C-", POSConjunction},
		{"X-", POSParticle},
		{"I-", POSInterjection},
		{"M-", POSNumeral},
		{"P-", POSPreposition},
		{"D-", POSAdverb},
		{"RA", POSArticle},
		{"RD", POSDemonstrativePronoun},
		{"RI", POSInterrogativePronoun},
		{"RP", POSPossessivePronoun},
		{"RR", POSRelativePronoun},
		{"N3", POSNoun},
		{"A1", POSAdjective},
		{"A3", POSAdjective},
		{"V", POSVerb},
		{"V1", POSVerb},
		{"V9", POSVerb},
		{"VA", POSVerb},
		{"VZ", POSVerb},
		{"V- ---", POSVerb}, // truncated morphology block
	}
	for _, tt := range tests {
		p, err := ParseTag(tt.tag)
		if err != nil {
			t.Errorf("ParseTag(%q): %v", tt.tag, err)
			continue
		}
		if p.POS != tt.want {
			t.Errorf("ParseTag(%q).POS = %v, want %v", tt.tag, p.POS, tt.want)
		}
		rest := p
		rest.POS = POSUnknown
		if rest != (Parse{}) {
			t.Errorf("ParseTag(%q) set morphology fields on a short tag: %+v", tt.tag, p)
		}
	}
}

func TestParseTagErrors(t *testing.T) {
	tests := []struct {
		tag  string
		want error
	}{
		{"", ErrIncomplete},
		{"   ", ErrIncomplete},
		{"---", ErrIncomplete},
		{"ZZ", ErrUnknownPartOfSpeech},
		{"Q- ----NSF-", ErrUnknownPartOfSpeech},
		{"ABCDEFGHI", ErrUnknownPartOfSpeech}, // over the token length cap
		{"V- 4AAI-S--", ErrUnknownPerson},
		{"V- 1ZAI-S--", ErrUnknownTenseForm},
		{"V- 1AZI-S--", ErrUnknownVoice},
		{"V- 1AAZ-S--", ErrUnrecognisedValue},
		{"N- ----ZSF-", ErrUnknownCase},
		{"N- ----NZF-", ErrUnknownNumber},
		{"N- ----NSZ-", ErrUnknownGender},
	}
	for _, tt := range tests {
		p, err := ParseTag(tt.tag)
		if err == nil {
			t.Errorf("ParseTag(%q) = %+v, want error %v", tt.tag, p, tt.want)
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseTag(%q) error = %v, want %v", tt.tag, err, tt.want)
		}
		if p != (Parse{}) {
			t.Errorf("ParseTag(%q) returned a partial record on error: %+v", tt.tag, p)
		}
	}
}

func TestParseTagErrorContext(t *testing.T) {
	_, err := ParseTag("V- 1AAZ-S--")
	var tagErr *TagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("ParseTag error = %T, want *TagError", err)
	}
	if tagErr.Char != 'Z' {
		t.Errorf("TagError.Char = %q, want 'Z'", tagErr.Char)
	}
	if tagErr.Offset != 6 {
		t.Errorf("TagError.Offset = %d, want 6", tagErr.Offset)
	}
	if tagErr.Tag != "V- 1AAZ-S--" {
		t.Errorf("TagError.Tag = %q", tagErr.Tag)
	}

	_, err = ParseTag("ZZ ----NSF-")
	if !errors.As(err, &tagErr) {
		t.Fatalf("ParseTag error = %T, want *TagError", err)
	}
	if tagErr.Token != "ZZ" {
		t.Errorf("TagError.Token = %q, want \"ZZ\"", tagErr.Token)
	}
}

func TestMoodReinterpretation(t *testing.T) {
	// The mood-position letter means different things depending on the
	// part of speech decoded from the prefix.
	tests := []struct {
		tag      string
		wantPOS  PartOfSpeech
		wantMood Mood
		indecl   bool
	}{
		// 'S': subjunctive on verbs, superlative degree elsewhere
		{"V- 3PAS-S--", POSVerb, MoodSubjunctive, false},
		{"N- ---S----", POSSuperlativeNoun, MoodUnknown, false},
		{"A- ---S----", POSSuperlativeAdjective, MoodUnknown, false},
		{"D- ---S----", POSSuperlativeAdverb, MoodUnknown, false},
		// 'S' on a class without a degree reading changes nothing
		{"RA ---S----", POSArticle, MoodUnknown, false},
		// 'C': comparative degree
		{"N- ---C----", POSComparativeNoun, MoodUnknown, false},
		{"A- ---C----", POSComparativeAdjective, MoodUnknown, false},
		{"D- ---C----", POSComparativeAdverb, MoodUnknown, false},
		{"C- ---C----", POSConjunction, MoodUnknown, false},
		// 'I': indicative on verbs, indeclinable flag elsewhere
		{"V- 3PAI-S--", POSVerb, MoodIndicative, false},
		{"N- ---I----", POSNoun, MoodUnknown, true},
		// unconditional moods
		{"V- --AO----", POSVerb, MoodOptative, false},
		{"V- --AM----", POSVerb, MoodImperative, false},
		{"V- --AN----", POSVerb, MoodInfinitive, false},
		{"V- --AP----", POSVerb, MoodParticiple, false},
		// 'D' is reserved and decodes to nothing
		{"N- ---D----", POSNoun, MoodUnknown, false},
		{"V- ---D----", POSVerb, MoodUnknown, false},
	}
	for _, tt := range tests {
		p, err := ParseTag(tt.tag)
		if err != nil {
			t.Errorf("ParseTag(%q): %v", tt.tag, err)
			continue
		}
		if p.POS != tt.wantPOS {
			t.Errorf("ParseTag(%q).POS = %v, want %v", tt.tag, p.POS, tt.wantPOS)
		}
		if p.Mood != tt.wantMood {
			t.Errorf("ParseTag(%q).Mood = %v, want %v", tt.tag, p.Mood, tt.wantMood)
		}
		if p.Indeclinable != tt.indecl {
			t.Errorf("ParseTag(%q).Indeclinable = %v, want %v", tt.tag, p.Indeclinable, tt.indecl)
		}
	}
}

func TestParseTagIdempotent(t *testing.T) {
	tags := []string{"V- 1AAI-S--", "N- ----DSF-", "RX ----DPM-", "C-"}
	for _, tag := range tags {
		a, err1 := ParseTag(tag)
		b, err2 := ParseTag(tag)
		if err1 != nil || err2 != nil {
			t.Errorf("ParseTag(%q): %v / %v", tag, err1, err2)
			continue
		}
		if a != b {
			t.Errorf("ParseTag(%q) not deterministic: %+v vs %+v", tag, a, b)
		}
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"V- 1AAI-S--", "verb, aorist active indicative, 1st person singular"},
		{"N- ----DSF-", "noun, dative singular feminine"},
		{"C-", "conjunction"},
		{"N- ---I----", "noun (indeclinable)"},
		{"RX", "relative pronoun (indefinite)"},
	}
	for _, tt := range tests {
		p, err := ParseTag(tt.tag)
		if err != nil {
			t.Fatalf("ParseTag(%q): %v", tt.tag, err)
		}
		if got := p.String(); got != tt.want {
			t.Errorf("ParseTag(%q).String() = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
