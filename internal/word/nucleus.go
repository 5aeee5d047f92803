package word

import "github.com/roach88/pavsca/internal/ir"

// DefaultVowels are the base nucleus symbols.
var DefaultVowels = []string{"a", "e", "i", "o", "u", "ə"}

// Nucleus is the set of phonemes that can anchor a syllable.
type Nucleus map[ir.Phoneme]struct{}

// NewNucleus builds a nucleus set from base vowels. Each vowel's long form
// (vowel + length mark) is included automatically.
func NewNucleus(vowels ...string) Nucleus {
	n := make(Nucleus, 2*len(vowels))
	for _, v := range vowels {
		n[ir.Phoneme(v)] = struct{}{}
		n[ir.Phoneme(v+string(ir.Length))] = struct{}{}
	}
	return n
}

// DefaultNucleus returns the nucleus set built from DefaultVowels.
func DefaultNucleus() Nucleus {
	return NewNucleus(DefaultVowels...)
}

// Contains reports whether p is a nucleus phoneme.
func (n Nucleus) Contains(p ir.Phoneme) bool {
	_, ok := n[p]
	return ok
}

// Valid reports whether the syllable holds at least one nucleus phoneme.
func (n Nucleus) Valid(s Syllable) bool {
	for _, p := range s.Phonemes {
		if n.Contains(p) {
			return true
		}
	}
	return false
}
