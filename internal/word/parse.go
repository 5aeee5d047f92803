package word

import (
	"strings"

	"github.com/roach88/pavsca/internal/ir"
)

// isStressSeparator reports whether r marks the start of a stressed syllable.
// The ASCII apostrophe is accepted as well as the IPA stress mark.
func isStressSeparator(r rune) bool {
	return r == ir.StressMark || r == '\''
}

// isModifier reports whether r fuses onto the preceding phoneme.
func isModifier(r rune) bool {
	return r == ir.Aspiration || r == ir.Length
}

// Parse builds a Word from IPA text such as "ˈpʰa.ta" or "pmat".
//
// A '.' ends the current syllable and starts an unstressed one; a stress
// mark ends it and starts a stressed one. If the text carries no stress mark
// at all, the first syllable is stressed. Aspiration and length marks fuse
// onto the preceding phoneme; every other character starts a new phoneme.
func Parse(text string) *Word {
	w := &Word{}
	var (
		syllable []ir.Phoneme
		phoneme  strings.Builder
	)
	stressed := !strings.ContainsFunc(text, isStressSeparator)

	flushPhoneme := func() {
		if phoneme.Len() > 0 {
			syllable = append(syllable, ir.Phoneme(phoneme.String()))
			phoneme.Reset()
		}
	}
	flushSyllable := func() {
		flushPhoneme()
		if len(syllable) > 0 {
			w.Syllables = append(w.Syllables, Syllable{Phonemes: syllable, Stressed: stressed})
			syllable = nil
		}
	}

	for _, r := range text {
		switch {
		case r == ir.SyllableBreak:
			flushSyllable()
			stressed = false
		case isStressSeparator(r):
			flushSyllable()
			stressed = true
		case isModifier(r):
			phoneme.WriteRune(r)
		default:
			flushPhoneme()
			phoneme.WriteRune(r)
		}
	}
	flushSyllable()

	return w
}
