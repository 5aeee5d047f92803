package word

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every IndexError via errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a flat index outside the word.
type IndexError struct {
	Index  int
	Length int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("flat index %d out of range for word of length %d", e.Index, e.Length)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) true for any IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
