package morphgnt

import "strings"

func (p PartOfSpeech) String() string {
	switch p {
	case POSNoun:
		return "noun"
	case POSComparativeNoun:
		return "comparative noun"
	case POSSuperlativeNoun:
		return "superlative noun"
	case POSAdjective:
		return "adjective"
	case POSComparativeAdjective:
		return "comparative adjective"
	case POSSuperlativeAdjective:
		return "superlative adjective"
	case POSArticle:
		return "article"
	case POSInterrogativePronoun:
		return "interrogative/indefinite pronoun"
	case POSDemonstrativePronoun:
		return "demonstrative pronoun"
	case POSPossessivePronoun:
		return "possessive pronoun"
	case POSRelativePronoun:
		return "relative pronoun"
	case POSConjunction:
		return "conjunction"
	case POSParticle:
		return "particle"
	case POSInterjection:
		return "interjection"
	case POSNumeral:
		return "numeral"
	case POSPreposition:
		return "preposition"
	case POSAdverb:
		return "adverb"
	case POSComparativeAdverb:
		return "comparative adverb"
	case POSSuperlativeAdverb:
		return "superlative adverb"
	case POSVerb:
		return "verb"
	default:
		return "unknown"
	}
}

func (p Person) String() string {
	switch p {
	case PersonFirst:
		return "1st person"
	case PersonSecond:
		return "2nd person"
	case PersonThird:
		return "3rd person"
	default:
		return "unknown"
	}
}

func (t TenseForm) String() string {
	switch t {
	case TensePresent:
		return "present"
	case TenseFuture:
		return "future"
	case TenseAorist:
		return "aorist"
	case TenseImperfect:
		return "imperfect"
	case TensePerfect:
		return "perfect"
	case TensePluperfect:
		return "pluperfect"
	default:
		return "unknown"
	}
}

func (v Voice) String() string {
	switch v {
	case VoiceActive:
		return "active"
	case VoiceMiddle:
		return "middle"
	case VoicePassive:
		return "passive"
	default:
		return "unknown"
	}
}

func (m Mood) String() string {
	switch m {
	case MoodIndicative:
		return "indicative"
	case MoodSubjunctive:
		return "subjunctive"
	case MoodOptative:
		return "optative"
	case MoodImperative:
		return "imperative"
	case MoodInfinitive:
		return "infinitive"
	case MoodParticiple:
		return "participle"
	default:
		return "unknown"
	}
}

func (c Case) String() string {
	switch c {
	case CaseNominative:
		return "nominative"
	case CaseGenitive:
		return "genitive"
	case CaseDative:
		return "dative"
	case CaseAccusative:
		return "accusative"
	case CaseVocative:
		return "vocative"
	default:
		return "unknown"
	}
}

func (n Number) String() string {
	switch n {
	case NumberSingular:
		return "singular"
	case NumberPlural:
		return "plural"
	default:
		return "unknown"
	}
}

func (g Gender) String() string {
	switch g {
	case GenderMasculine:
		return "masculine"
	case GenderFeminine:
		return "feminine"
	case GenderNeuter:
		return "neuter"
	default:
		return "unknown"
	}
}

// String renders a compact human-readable description of the record,
// e.g. "verb, aorist active indicative, 1st person singular" or
// "noun, dative singular feminine". Unknown attributes are omitted.
func (p Parse) String() string {
	out := []string{p.POS.String()}

	var verbal []string
	if p.TenseForm != TenseUnknown {
		verbal = append(verbal, p.TenseForm.String())
	}
	if p.Voice != VoiceUnknown {
		verbal = append(verbal, p.Voice.String())
	}
	if p.Mood != MoodUnknown {
		verbal = append(verbal, p.Mood.String())
	}
	if len(verbal) > 0 {
		out = append(out, strings.Join(verbal, " "))
	}

	var nominal []string
	if p.Person != PersonUnknown {
		nominal = append(nominal, p.Person.String())
	}
	if p.Case != CaseUnknown {
		nominal = append(nominal, p.Case.String())
	}
	if p.Number != NumberUnknown {
		nominal = append(nominal, p.Number.String())
	}
	if p.Gender != GenderUnknown {
		nominal = append(nominal, p.Gender.String())
	}
	if len(nominal) > 0 {
		out = append(out, strings.Join(nominal, " "))
	}

	s := strings.Join(out, ", ")
	if p.Indeclinable {
		s += " (indeclinable)"
	}
	if p.Indefinite {
		s += " (indefinite)"
	}
	return s
}
