package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pavsca/internal/compiler"
	"github.com/roach88/pavsca/internal/ir"
	"github.com/roach88/pavsca/internal/word"
)

// compileRule compiles one rule after processing the given definitions.
func compileRule(t *testing.T, rule string, defines ...string) *ir.Rule {
	t.Helper()
	c := compiler.New()
	for _, d := range defines {
		require.NoError(t, c.Define(d))
	}
	r, err := c.CompileRule(rule)
	require.NoError(t, err)
	return r
}

func TestCanApplyAt(t *testing.T) {
	tests := []struct {
		name    string
		rule    string
		defines []string
		word    string
		index   int
		want    bool
	}{
		{"boundary then literal at start", "p/f/#_m", nil, "pmat", 0, true},
		{"boundary at interior index", "p/f/#_m", nil, "apmat", 1, false},
		{"literal mismatch", "p/f/#_m", nil, "bmat", 0, false},
		{"environment runs past end", "t/d/_a", nil, "pat", 2, false},
		{"trailing boundary", "t/d/_#", nil, "pat", 2, true},
		{"trailing boundary not at end", "a/e/_#", nil, "pat", 1, false},
		{"category member", "C/F/_", []string{"C = p, t", "F = f, θ"}, "ta", 0, true},
		{"stressed requirement met", "+a/o/_", nil, "pa.ta", 1, true},
		{"stressed requirement failed", "+a/o/_", nil, "pa.ta", 3, false},
		{"unstressed requirement met", "-a/ə/_", nil, "pa.ta", 3, true},
		{"insertion slot at end of word", "/e/t_", nil, "pat", 2, true},
		{"index at length with pure insertion", "/n/_#", nil, "pa", 2, true},
		{"index beyond length", "a/e/_", nil, "pa", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := compileRule(t, tt.rule, tt.defines...)
			assert.Equal(t, tt.want, CanApplyAt(rule, word.Parse(tt.word), tt.index))
		})
	}
}

func TestApplyAtSubstitutionClamp(t *testing.T) {
	rule := compileRule(t, "C/F/_", "C = p, t, k", "F = f, θ")

	tests := []struct {
		word string
		want string
	}{
		{"pa", "fa"}, // index 0 maps to 0
		{"ta", "θa"}, // index 1 maps to 1
		{"ka", "θa"}, // index 2 clamps to 1
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			w := word.Parse(tt.word)
			require.True(t, CanApplyAt(rule, w, 0))
			require.NoError(t, ApplyAt(rule, w, 0))
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestApplyAtEpenthesisUsesFirstAlternative(t *testing.T) {
	rule := compileRule(t, "/V/s_t", "V = e, i")
	w := word.Parse("sta")

	require.True(t, CanApplyAt(rule, w, 0))
	require.NoError(t, ApplyAt(rule, w, 0))

	assert.Equal(t, "seta", w.String())
}

func TestApplyAtDeletionKeepsCursor(t *testing.T) {
	// Deleting "pt" leaves the cursor in place for both deletions.
	rule := compileRule(t, "pt//_a")
	w := word.Parse("opta")

	require.True(t, CanApplyAt(rule, w, 1))
	require.NoError(t, ApplyAt(rule, w, 1))

	assert.Equal(t, "oa", w.String())
}

func TestApplyAtBoundaryDoesNotMoveCursor(t *testing.T) {
	rule := compileRule(t, "a/e/#_")
	w := word.Parse("aa")

	require.True(t, CanApplyAt(rule, w, 0))
	require.NoError(t, ApplyAt(rule, w, 0))

	assert.Equal(t, "ea", w.String())
}

func TestApplyAtEmptyPairIsNoop(t *testing.T) {
	rule := compileRule(t, "//_")
	w := word.Parse("pa")

	require.True(t, CanApplyAt(rule, w, 1))
	require.NoError(t, ApplyAt(rule, w, 1))

	assert.Equal(t, "pa", w.String())
}

func TestApplyAtUnmatchedPhoneme(t *testing.T) {
	rule := compileRule(t, "p/f/_")
	w := word.Parse("ta")

	err := ApplyAt(rule, w, 0)
	require.Error(t, err)

	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeUnmatchedPhoneme, code)
	assert.Equal(t, "ta", w.String())
}

func TestApplyAtIndexOutOfRange(t *testing.T) {
	rule := compileRule(t, "a//_")
	w := word.Parse("pa")

	err := ApplyAt(rule, w, 7)
	require.Error(t, err)

	code, _ := CodeOf(err)
	assert.Equal(t, ErrCodeIndexOutOfRange, code)
	assert.ErrorIs(t, err, word.ErrIndexOutOfRange)
}
