package engine

import (
	"fmt"

	"github.com/roach88/pavsca/internal/ir"
	"github.com/roach88/pavsca/internal/word"
)

// CanApplyAt reports whether rule matches w starting at flat index index.
//
// The from side is walked with a cursor starting at index:
//   - boundary: cursor must be 0 or the word's length; cursor stays put
//   - empty (insertion slot): always passes; cursor stays put
//   - otherwise: the phoneme at the cursor must be an alternative and, unless
//     the set accepts any stress, its syllable stress must match; the cursor
//     advances by one
func CanApplyAt(rule *ir.Rule, w *word.Word, index int) bool {
	cursor := index
	length := w.Len()
	for _, pair := range rule.Pairs {
		from := pair.From
		switch {
		case from.IsBoundary():
			if cursor != 0 && cursor != length {
				return false
			}
		case from.IsEmpty():
		default:
			if cursor < 0 || cursor >= length {
				return false
			}
			p, err := w.At(cursor)
			if err != nil || !from.Contains(p) {
				return false
			}
			if from.Stress != ir.StressAny {
				s, err := w.StressAt(cursor)
				if err != nil || s != from.Stress {
					return false
				}
			}
			cursor++
		}
	}
	return true
}

// ApplyAt mutates w according to rule starting at flat index index.
// Callers must check CanApplyAt first.
//
// Pairs are walked with a cursor starting at index:
//   - boundary: no change
//   - empty from, non-empty to (epenthesis): insert the first to alternative
//     at the cursor and advance
//   - non-empty from, empty to (deletion): remove the phoneme at the cursor;
//     the next phoneme shifts into place so the cursor stays put
//   - both non-empty (substitution): the word's phoneme maps to the to
//     alternative at the same position in the from list, clamped to the last
//     to alternative; advance
//   - both empty: no change
func ApplyAt(rule *ir.Rule, w *word.Word, index int) error {
	cursor := index
	for _, pair := range rule.Pairs {
		from, to := pair.From, pair.To
		switch {
		case from.IsBoundary():
		case from.IsEmpty() && to.IsEmpty():
		case from.IsEmpty():
			if err := w.Insert(cursor, to.Phonemes[0]); err != nil {
				return indexError(err, index, cursor)
			}
			cursor++
		case to.IsEmpty():
			if err := w.Remove(cursor); err != nil {
				return indexError(err, index, cursor)
			}
		default:
			p, err := w.At(cursor)
			if err != nil {
				return indexError(err, index, cursor)
			}
			pos := from.IndexOf(p)
			if pos < 0 {
				return &RuntimeError{
					Code:     ErrCodeUnmatchedPhoneme,
					Message:  fmt.Sprintf("phoneme %q at index %d is not in %s", p, cursor, from),
					Position: index,
				}
			}
			pos = min(pos, len(to.Phonemes)-1)
			if err := w.Replace(cursor, to.Phonemes[pos]); err != nil {
				return indexError(err, index, cursor)
			}
			cursor++
		}
	}
	return nil
}

func indexError(err error, index, cursor int) error {
	return &RuntimeError{
		Code:     ErrCodeIndexOutOfRange,
		Message:  fmt.Sprintf("cursor %d", cursor),
		Position: index,
		Err:      err,
	}
}
