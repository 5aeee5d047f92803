package ir

import "strings"

// PhonemeSet is the group of alternative phonemes that may occupy one
// aligned position, plus a stress requirement.
//
// Phonemes may alias a category's backing slice; treat it as read-only.
type PhonemeSet struct {
	Phonemes []Phoneme `json:"phonemes"`
	Stress   Stress    `json:"stress"`
}

// NewPhonemeSet builds a set with StressAny from literal symbols.
func NewPhonemeSet(symbols ...string) PhonemeSet {
	phonemes := make([]Phoneme, len(symbols))
	for i, s := range symbols {
		phonemes[i] = Phoneme(s)
	}
	return PhonemeSet{Phonemes: phonemes}
}

// IsBoundary reports whether the set is the singleton word-boundary marker.
func (s PhonemeSet) IsBoundary() bool {
	return len(s.Phonemes) == 1 && s.Phonemes[0] == Boundary
}

// IsInsertionPoint reports whether the set is the singleton insertion marker.
func (s PhonemeSet) IsInsertionPoint() bool {
	return len(s.Phonemes) == 1 && s.Phonemes[0] == InsertionPoint
}

// IsEmpty reports whether the set holds no alternatives.
func (s PhonemeSet) IsEmpty() bool {
	return len(s.Phonemes) == 0
}

// IndexOf returns the position of p among the alternatives, or -1.
func (s PhonemeSet) IndexOf(p Phoneme) int {
	for i, alt := range s.Phonemes {
		if alt == p {
			return i
		}
	}
	return -1
}

// Contains reports whether p is one of the alternatives.
func (s PhonemeSet) Contains(p Phoneme) bool {
	return s.IndexOf(p) >= 0
}

// String renders the set as e.g. "+[p t k]" or "[]".
func (s PhonemeSet) String() string {
	var b strings.Builder
	b.WriteString(s.Stress.prefix())
	b.WriteByte('[')
	for i, p := range s.Phonemes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(p))
	}
	b.WriteByte(']')
	return b.String()
}
