package morphgnt

// isPlaceholder reports whether c is one of the "no value" fillers a
// morphology field may carry instead of a code letter.
func isPlaceholder(c byte) bool {
	return c == ' ' || c == '-' || c == '.'
}

// decodeMorphology decodes the fixed-width morphology block of tag,
// starting at byte offset start (just past the part-of-speech code).
// A remainder shorter than the full block is not an error: many corpus
// lines carry only a part-of-speech code, and p is simply left as
// classified. Fields are decoded left to right and the first bad byte
// aborts the decode.
func decodeMorphology(p *Parse, tag string, start int) error {
	i := start
	for i < len(tag) && tag[i] == ' ' {
		i++
	}
	rest := tag[i:]
	if len(rest) < 8 {
		return nil
	}
	fail := func(off int, kind error) error {
		return &TagError{Tag: tag, Char: rest[off], Offset: i + off, Err: kind}
	}

	// offset 0: person
	switch c := rest[0]; c {
	case '1':
		p.Person = PersonFirst
	case '2':
		p.Person = PersonSecond
	case '3':
		p.Person = PersonThird
	default:
		if !isPlaceholder(c) {
			return fail(0, ErrUnknownPerson)
		}
	}

	// offset 1: tense-form. Perfect and pluperfect each have two
	// source letters; 'U' is an explicit "unknown" marker.
	switch c := rest[1]; c {
	case 'P':
		p.TenseForm = TensePresent
	case 'F':
		p.TenseForm = TenseFuture
	case 'A':
		p.TenseForm = TenseAorist
	case 'I':
		p.TenseForm = TenseImperfect
	case 'E', 'X':
		p.TenseForm = TensePerfect
	case 'L', 'Y':
		p.TenseForm = TensePluperfect
	case 'U':
	default:
		if !isPlaceholder(c) {
			return fail(1, ErrUnknownTenseForm)
		}
	}

	// offset 2: voice
	switch c := rest[2]; c {
	case 'A':
		p.Voice = VoiceActive
	case 'M':
		p.Voice = VoiceMiddle
	case 'P':
		p.Voice = VoicePassive
	default:
		if !isPlaceholder(c) {
			return fail(2, ErrUnknownVoice)
		}
	}

	// offset 3: mood, or degree/indeclinable on non-verbs
	if err := decodeMoodOrDegree(p, rest[3]); err != nil {
		return fail(3, err)
	}

	// offset 4: case
	switch c := rest[4]; c {
	case 'N':
		p.Case = CaseNominative
	case 'G':
		p.Case = CaseGenitive
	case 'D':
		p.Case = CaseDative
	case 'A':
		p.Case = CaseAccusative
	case 'V':
		p.Case = CaseVocative
	default:
		if !isPlaceholder(c) {
			return fail(4, ErrUnknownCase)
		}
	}

	// offset 5: number. 'A' ("any") carries no information.
	switch c := rest[5]; c {
	case 'S':
		p.Number = NumberSingular
	case 'P':
		p.Number = NumberPlural
	case 'A':
	default:
		if !isPlaceholder(c) {
			return fail(5, ErrUnknownNumber)
		}
	}

	// offset 6: gender, overriding any declension-class default
	switch c := rest[6]; c {
	case 'M':
		p.Gender = GenderMasculine
	case 'F':
		p.Gender = GenderFeminine
	case 'N':
		p.Gender = GenderNeuter
	default:
		if !isPlaceholder(c) {
			return fail(6, ErrUnknownGender)
		}
	}

	return nil
}

// decodeMoodOrDegree applies the mood-position byte to p. The letter's
// meaning depends on the part of speech already classified: verbs take
// a mood, while on other classes the position carries the indeclinable
// flag ('I') and the comparison degree ('C', 'S').
func decodeMoodOrDegree(p *Parse, c byte) error {
	switch c {
	case 'I':
		if p.POS == POSVerb {
			p.Mood = MoodIndicative
		} else {
			p.Indeclinable = true
		}
	case 'S':
		switch p.POS {
		case POSVerb:
			p.Mood = MoodSubjunctive
		case POSNoun:
			p.POS = POSSuperlativeNoun
		case POSAdjective:
			p.POS = POSSuperlativeAdjective
		case POSAdverb:
			p.POS = POSSuperlativeAdverb
		}
	case 'O':
		p.Mood = MoodOptative
	case 'M':
		p.Mood = MoodImperative
	case 'N':
		p.Mood = MoodInfinitive
	case 'P':
		p.Mood = MoodParticiple
	case 'C':
		switch p.POS {
		case POSNoun:
			p.POS = POSComparativeNoun
		case POSAdjective:
			p.POS = POSComparativeAdjective
		case POSAdverb:
			p.POS = POSComparativeAdverb
		}
	case 'D':
		// Diminutive marker: the tagging scheme reserves the letter but
		// no corpus attribute exists for it yet, so it decodes to
		// nothing rather than an error.
	default:
		if !isPlaceholder(c) {
			return ErrUnrecognisedValue
		}
	}
	return nil
}
