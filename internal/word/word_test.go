package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pavsca/internal/ir"
)

func phonemes(symbols ...string) []ir.Phoneme {
	out := make([]ir.Phoneme, len(symbols))
	for i, s := range symbols {
		out[i] = ir.Phoneme(s)
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Syllable
	}{
		{
			name: "unmarked word defaults first syllable stressed",
			text: "pmat",
			want: []Syllable{{Phonemes: phonemes("p", "m", "a", "t"), Stressed: true}},
		},
		{
			name: "plain separators leave later syllables unstressed",
			text: "pa.ta",
			want: []Syllable{
				{Phonemes: phonemes("p", "a"), Stressed: true},
				{Phonemes: phonemes("t", "a"), Stressed: false},
			},
		},
		{
			name: "stress mark on second syllable",
			text: "paˈta",
			want: []Syllable{
				{Phonemes: phonemes("p", "a"), Stressed: false},
				{Phonemes: phonemes("t", "a"), Stressed: true},
			},
		},
		{
			name: "leading stress mark",
			text: "ˈa.ha",
			want: []Syllable{
				{Phonemes: phonemes("a"), Stressed: true},
				{Phonemes: phonemes("h", "a"), Stressed: false},
			},
		},
		{
			name: "apostrophe counts as stress mark",
			text: "'pa",
			want: []Syllable{{Phonemes: phonemes("p", "a"), Stressed: true}},
		},
		{
			name: "aspiration and length fuse",
			text: "pʰaː.ta",
			want: []Syllable{
				{Phonemes: phonemes("pʰ", "aː"), Stressed: true},
				{Phonemes: phonemes("t", "a"), Stressed: false},
			},
		},
		{
			name: "empty syllables are dropped",
			text: "pa..ta",
			want: []Syllable{
				{Phonemes: phonemes("p", "a"), Stressed: true},
				{Phonemes: phonemes("t", "a"), Stressed: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Parse(tt.text)
			assert.Equal(t, tt.want, w.Syllables)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	w := Parse("")
	assert.Empty(t, w.Syllables)
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, "", w.String())
}

func TestString(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"pmat", "pmat"},
		{"pa.ta", "pa.ta"},
		{"paˈta", "paˈta"},
		// The first syllable's stress is never rendered.
		{"ˈa.ha", "a.ha"},
		{"pʰaː.ta", "pʰaː.ta"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).String())
		})
	}
}

func TestFlatAccess(t *testing.T) {
	w := Parse("paˈtak")
	require.Equal(t, 5, w.Len())

	expect := []struct {
		p ir.Phoneme
		s ir.Stress
	}{
		{"p", ir.Unstressed},
		{"a", ir.Unstressed},
		{"t", ir.Stressed},
		{"a", ir.Stressed},
		{"k", ir.Stressed},
	}
	for i, e := range expect {
		p, err := w.At(i)
		require.NoError(t, err)
		assert.Equal(t, e.p, p, "phoneme at %d", i)

		s, err := w.StressAt(i)
		require.NoError(t, err)
		assert.Equal(t, e.s, s, "stress at %d", i)
	}
}

func TestFlatAccessOutOfRange(t *testing.T) {
	w := Parse("pa")

	for _, i := range []int{-1, 2, 10} {
		_, err := w.At(i)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		var ie *IndexError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, i, ie.Index)
		assert.Equal(t, 2, ie.Length)

		_, err = w.StressAt(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, w.Replace(i, "x"), ErrIndexOutOfRange)
		assert.ErrorIs(t, w.Remove(i), ErrIndexOutOfRange)
	}
}

func TestReplace(t *testing.T) {
	w := Parse("pa.ta")
	require.NoError(t, w.Replace(2, "d"))
	assert.Equal(t, "pa.da", w.String())
}

func TestInsert(t *testing.T) {
	t.Run("inside syllable", func(t *testing.T) {
		w := Parse("pa.ta")
		require.NoError(t, w.Insert(1, "l"))
		assert.Equal(t, "pla.ta", w.String())
	})

	t.Run("at syllable start joins the owning syllable", func(t *testing.T) {
		w := Parse("pa.ta")
		require.NoError(t, w.Insert(2, "s"))
		assert.Equal(t, "pa.sta", w.String())
		assert.Equal(t, phonemes("s", "t", "a"), w.Syllables[1].Phonemes)
	})

	t.Run("at end appends to last syllable", func(t *testing.T) {
		w := Parse("pa.ta")
		require.NoError(t, w.Insert(4, "n"))
		assert.Equal(t, "pa.tan", w.String())
	})

	t.Run("into empty word", func(t *testing.T) {
		w := Parse("")
		require.NoError(t, w.Insert(0, "a"))
		require.Len(t, w.Syllables, 1)
		assert.True(t, w.Syllables[0].Stressed)
		assert.Equal(t, "a", w.String())
	})

	t.Run("beyond end fails", func(t *testing.T) {
		w := Parse("pa")
		assert.ErrorIs(t, w.Insert(3, "n"), ErrIndexOutOfRange)
	})
}

func TestRemove(t *testing.T) {
	w := Parse("pa.ta")
	require.NoError(t, w.Remove(3))
	assert.Equal(t, "pa.t", w.String())
	assert.Equal(t, 3, w.Len())
}

func TestCloneIsDeep(t *testing.T) {
	w := Parse("pa.ta")
	c := w.Clone()
	require.NoError(t, c.Replace(0, "b"))

	assert.Equal(t, "pa.ta", w.String())
	assert.Equal(t, "ba.ta", c.String())
}
