package ir

import "golang.org/x/text/unicode/norm"

// Normalize returns s in Unicode NFC.
//
// Rule and word text are normalized at the input boundary so a vowel with a
// combining diacritic tokenizes the same whether it was typed precomposed
// or decomposed.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
