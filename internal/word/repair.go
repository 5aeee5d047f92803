package word

import (
	"slices"
)

// Repair merges every syllable lacking a nucleus into a valid neighbor and
// returns the number of merges performed.
//
// An invalid syllable is prepended to its right neighbor when that neighbor
// is valid, otherwise appended to its left neighbor when that one is valid.
// Merged syllables are stressed if either side was. Passes repeat until all
// syllables are valid or a full pass merges nothing; the second condition
// stops words with no nucleus anywhere, which can never become valid.
func (w *Word) Repair(nucleus Nucleus) int {
	merges := 0
	for !w.Valid(nucleus) {
		progressed := false
		for i := 0; i < len(w.Syllables); {
			s := w.Syllables[i]
			if nucleus.Valid(s) {
				i++
				continue
			}

			switch {
			case i+1 < len(w.Syllables) && nucleus.Valid(w.Syllables[i+1]):
				next := &w.Syllables[i+1]
				next.Phonemes = append(slices.Clone(s.Phonemes), next.Phonemes...)
				next.Stressed = next.Stressed || s.Stressed
				w.Syllables = slices.Delete(w.Syllables, i, i+1)
			case i > 0 && nucleus.Valid(w.Syllables[i-1]):
				prev := &w.Syllables[i-1]
				prev.Phonemes = append(prev.Phonemes, s.Phonemes...)
				prev.Stressed = prev.Stressed || s.Stressed
				w.Syllables = slices.Delete(w.Syllables, i, i+1)
			default:
				i++
				continue
			}
			merges++
			progressed = true
		}
		if !progressed {
			break
		}
	}
	return merges
}

// Valid reports whether every syllable holds a nucleus phoneme.
func (w *Word) Valid(nucleus Nucleus) bool {
	for _, s := range w.Syllables {
		if !nucleus.Valid(s) {
			return false
		}
	}
	return true
}
