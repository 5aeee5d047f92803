package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pavsca/internal/ir"
)

func newTestCompiler(t *testing.T, defines ...string) *Compiler {
	t.Helper()
	c := New()
	for _, d := range defines {
		require.NoError(t, c.Define(d))
	}
	return c
}

func TestTokenize(t *testing.T) {
	c := newTestCompiler(t, "<consonant>, C = p, t, k", "V = a, i, u")

	tests := []struct {
		name string
		text string
		want []ir.PhonemeSet
	}{
		{
			name: "empty text is one empty set",
			text: "",
			want: []ir.PhonemeSet{{}},
		},
		{
			name: "boundary long category insertion literal",
			text: "#<consonant>_n",
			want: []ir.PhonemeSet{
				ir.NewPhonemeSet("#"),
				ir.NewPhonemeSet("p", "t", "k"),
				ir.NewPhonemeSet("_"),
				ir.NewPhonemeSet("n"),
			},
		},
		{
			name: "short category",
			text: "V_V",
			want: []ir.PhonemeSet{
				ir.NewPhonemeSet("a", "i", "u"),
				ir.NewPhonemeSet("_"),
				ir.NewPhonemeSet("a", "i", "u"),
			},
		},
		{
			name: "stress prefixes",
			text: "+V-k",
			want: []ir.PhonemeSet{
				{Phonemes: []ir.Phoneme{"a", "i", "u"}, Stress: ir.Stressed},
				{Phonemes: []ir.Phoneme{"k"}, Stress: ir.Unstressed},
			},
		},
		{
			name: "aspiration fuses onto literal",
			text: "pʰa",
			want: []ir.PhonemeSet{ir.NewPhonemeSet("pʰ"), ir.NewPhonemeSet("a")},
		},
		{
			name: "length does not fuse by default",
			text: "aː",
			want: []ir.PhonemeSet{ir.NewPhonemeSet("a"), ir.NewPhonemeSet("ː")},
		},
		{
			name: "prefix followed by prefix makes the second a literal",
			text: "+-",
			want: []ir.PhonemeSet{{Phonemes: []ir.Phoneme{"-"}, Stress: ir.Stressed}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Tokenize(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeLengthFusion(t *testing.T) {
	c := New(WithLengthFusion(true))

	got, err := c.Tokenize("pʰaː")
	require.NoError(t, err)
	assert.Equal(t, []ir.PhonemeSet{ir.NewPhonemeSet("pʰ"), ir.NewPhonemeSet("aː")}, got)
}

func TestTokenizeSharesCategoryList(t *testing.T) {
	c := newTestCompiler(t, "C = p, t")

	got, err := c.Tokenize("C")
	require.NoError(t, err)
	cat, _ := c.Registry().Lookup("C")

	require.Len(t, got, 1)
	assert.Same(t, &cat.Phonemes[0], &got[0].Phonemes[0])
}

func TestTokenizeErrors(t *testing.T) {
	c := newTestCompiler(t, "C = p")

	tests := []struct {
		name string
		text string
		code ErrorCode
	}{
		{"undefined short category", "V", ErrCodeUndefinedCategory},
		{"undefined long category", "<vowel>", ErrCodeUndefinedCategory},
		{"empty brackets", "<>", ErrCodeUndefinedCategory},
		{"unterminated category", "#<vowel", ErrCodeUnterminatedCategory},
		{"dangling stress", "C+", ErrCodeDanglingStress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Tokenize(tt.text)
			require.Error(t, err)
			code, ok := CodeOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}
