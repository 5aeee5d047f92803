package compiler

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/roach88/pavsca/internal/ir"
)

// Tokenize parses compact phoneme-set notation such as "#<consonant>_n"
// into one PhonemeSet per token.
//
// Each token is optionally prefixed by '+' (stressed) or '-' (unstressed)
// and is one of: a long-form category "<name>", a short-form category (one
// uppercase letter), or a literal phoneme (one character plus any trailing
// fusable modifiers). Categories resolve through the registry; literals
// become single-alternative sets. Empty text yields one empty set.
func (c *Compiler) Tokenize(text string) ([]ir.PhonemeSet, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return []ir.PhonemeSet{{}}, nil
	}

	var sets []ir.PhonemeSet
	for i := 0; i < len(runes); {
		stress := ir.StressAny
		switch runes[i] {
		case ir.StressedPrefix:
			stress = ir.Stressed
			i++
		case ir.UnstressedPrefix:
			stress = ir.Unstressed
			i++
		}
		if i >= len(runes) {
			return nil, &CompileError{
				Code:    ErrCodeDanglingStress,
				Message: fmt.Sprintf("stress prefix at end of %q", text),
			}
		}

		token, next, err := c.nextToken(runes, i)
		if err != nil {
			return nil, err
		}
		alternatives, err := c.resolve(token)
		if err != nil {
			return nil, err
		}
		sets = append(sets, ir.PhonemeSet{Phonemes: alternatives, Stress: stress})
		i = next
	}
	return sets, nil
}

// nextToken returns the token text starting at i and the index after it.
func (c *Compiler) nextToken(runes []rune, i int) (string, int, error) {
	switch {
	case runes[i] == '<':
		end := slices.Index(runes[i:], '>')
		if end < 0 {
			return "", 0, &CompileError{
				Code:    ErrCodeUnterminatedCategory,
				Message: fmt.Sprintf("category %q has no closing '>'", string(runes[i:])),
			}
		}
		return string(runes[i : i+end+1]), i + end + 1, nil
	case unicode.IsUpper(runes[i]):
		return string(runes[i]), i + 1, nil
	default:
		j := i + 1
		for j < len(runes) && slices.Contains(c.modifiers, runes[j]) {
			j++
		}
		return string(runes[i:j]), j, nil
	}
}

// resolve maps token text to its alternatives.
func (c *Compiler) resolve(token string) ([]ir.Phoneme, error) {
	if !strings.HasPrefix(token, "<") && !IsCategoryName(token) {
		return []ir.Phoneme{ir.Phoneme(token)}, nil
	}
	cat, ok := c.registry.Lookup(token)
	if !ok {
		return nil, &CompileError{
			Code:    ErrCodeUndefinedCategory,
			Message: fmt.Sprintf("undefined category %q", token),
		}
	}
	return cat.Phonemes, nil
}
