package ir

import "fmt"

// Phoneme is an atomic sound symbol: a base character optionally fused
// with trailing modifiers (e.g. "pʰ", "aː").
type Phoneme string

// Reserved sentinel symbols.
const (
	// Boundary marks a word edge in rule notation.
	Boundary Phoneme = "#"

	// InsertionPoint marks where target/replacement splice into an
	// environment. It never survives compilation.
	InsertionPoint Phoneme = "_"
)

// Modifier and separator characters shared by rule and word notation.
const (
	Aspiration    = 'ʰ'
	Length        = 'ː'
	StressMark    = 'ˈ'
	SyllableBreak = '.'

	// StressedPrefix and UnstressedPrefix constrain the next token in rule notation.
	StressedPrefix   = '+'
	UnstressedPrefix = '-'
)

// Stress is a stress requirement (in rules) or a stress value (in words).
// The zero value is StressAny.
type Stress int

const (
	StressAny Stress = iota
	Stressed
	Unstressed
)

// String returns the lowercase name of the stress value.
func (s Stress) String() string {
	switch s {
	case StressAny:
		return "any"
	case Stressed:
		return "stressed"
	case Unstressed:
		return "unstressed"
	default:
		return fmt.Sprintf("stress(%d)", int(s))
	}
}

// prefix returns the rule-notation prefix for the stress requirement.
func (s Stress) prefix() string {
	switch s {
	case Stressed:
		return string(StressedPrefix)
	case Unstressed:
		return string(UnstressedPrefix)
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Stress) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stress) UnmarshalText(text []byte) error {
	switch string(text) {
	case "any", "":
		*s = StressAny
	case "stressed":
		*s = Stressed
	case "unstressed":
		*s = Unstressed
	default:
		return fmt.Errorf("invalid stress %q", string(text))
	}
	return nil
}
