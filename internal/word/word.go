package word

import (
	"slices"
	"strings"

	"github.com/roach88/pavsca/internal/ir"
)

// Syllable is an ordered run of phonemes plus a stressed flag.
type Syllable struct {
	Phonemes []ir.Phoneme
	Stressed bool
}

// Word is an ordered sequence of syllables.
type Word struct {
	Syllables []Syllable
}

// New builds a word from syllables. The syllables are copied.
func New(syllables ...Syllable) *Word {
	w := &Word{Syllables: make([]Syllable, len(syllables))}
	for i, s := range syllables {
		w.Syllables[i] = Syllable{Phonemes: slices.Clone(s.Phonemes), Stressed: s.Stressed}
	}
	return w
}

// Clone returns a deep copy of the word.
func (w *Word) Clone() *Word {
	return New(w.Syllables...)
}

// Len returns the total phoneme count across all syllables.
func (w *Word) Len() int {
	n := 0
	for _, s := range w.Syllables {
		n += len(s.Phonemes)
	}
	return n
}

// locate resolves flat index i to (syllable, local index).
func (w *Word) locate(i int) (int, int, error) {
	if i >= 0 {
		offset := i
		for si, s := range w.Syllables {
			if offset < len(s.Phonemes) {
				return si, offset, nil
			}
			offset -= len(s.Phonemes)
		}
	}
	return 0, 0, &IndexError{Index: i, Length: w.Len()}
}

// At returns the phoneme at flat index i.
func (w *Word) At(i int) (ir.Phoneme, error) {
	si, li, err := w.locate(i)
	if err != nil {
		return "", err
	}
	return w.Syllables[si].Phonemes[li], nil
}

// StressAt returns Stressed or Unstressed for the syllable holding index i.
func (w *Word) StressAt(i int) (ir.Stress, error) {
	si, _, err := w.locate(i)
	if err != nil {
		return ir.StressAny, err
	}
	if w.Syllables[si].Stressed {
		return ir.Stressed, nil
	}
	return ir.Unstressed, nil
}

// Replace overwrites the phoneme at flat index i.
func (w *Word) Replace(i int, p ir.Phoneme) error {
	si, li, err := w.locate(i)
	if err != nil {
		return err
	}
	w.Syllables[si].Phonemes[li] = p
	return nil
}

// Insert places p immediately before flat index i, inside the syllable that
// currently owns index i. Phonemes at i and beyond shift right by one.
//
// i == Len() appends to the final syllable; a word with no syllables gets a
// new stressed syllable.
func (w *Word) Insert(i int, p ir.Phoneme) error {
	if i == w.Len() && i >= 0 {
		if len(w.Syllables) == 0 {
			w.Syllables = append(w.Syllables, Syllable{Stressed: true})
		}
		last := &w.Syllables[len(w.Syllables)-1]
		last.Phonemes = append(last.Phonemes, p)
		return nil
	}
	si, li, err := w.locate(i)
	if err != nil {
		return err
	}
	w.Syllables[si].Phonemes = slices.Insert(w.Syllables[si].Phonemes, li, p)
	return nil
}

// Remove deletes the phoneme at flat index i. Phonemes after i shift left by
// one. The owning syllable may be left without a nucleus; call Repair.
func (w *Word) Remove(i int) error {
	si, li, err := w.locate(i)
	if err != nil {
		return err
	}
	w.Syllables[si].Phonemes = slices.Delete(w.Syllables[si].Phonemes, li, li+1)
	return nil
}

// String renders the word in IPA: syllables in order, each syllable after
// the first preceded by the stress mark if stressed, else the syllable break.
func (w *Word) String() string {
	var b strings.Builder
	for i, s := range w.Syllables {
		if i != 0 {
			if s.Stressed {
				b.WriteRune(ir.StressMark)
			} else {
				b.WriteRune(ir.SyllableBreak)
			}
		}
		for _, p := range s.Phonemes {
			b.WriteString(string(p))
		}
	}
	return b.String()
}
