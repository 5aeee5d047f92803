package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhonemeSetPredicates(t *testing.T) {
	tests := []struct {
		name      string
		set       PhonemeSet
		boundary  bool
		insertion bool
		empty     bool
	}{
		{"boundary", NewPhonemeSet("#"), true, false, false},
		{"insertion point", NewPhonemeSet("_"), false, true, false},
		{"empty", PhonemeSet{}, false, false, true},
		{"literal", NewPhonemeSet("p"), false, false, false},
		{"boundary among alternatives", NewPhonemeSet("#", "p"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.boundary, tt.set.IsBoundary())
			assert.Equal(t, tt.insertion, tt.set.IsInsertionPoint())
			assert.Equal(t, tt.empty, tt.set.IsEmpty())
		})
	}
}

func TestPhonemeSetIndexOf(t *testing.T) {
	set := NewPhonemeSet("p", "t", "k")

	assert.Equal(t, 0, set.IndexOf("p"))
	assert.Equal(t, 2, set.IndexOf("k"))
	assert.Equal(t, -1, set.IndexOf("pʰ"))
	assert.True(t, set.Contains("t"))
	assert.False(t, set.Contains("f"))
}

func TestPhonemeSetString(t *testing.T) {
	assert.Equal(t, "[p t k]", NewPhonemeSet("p", "t", "k").String())
	assert.Equal(t, "[]", PhonemeSet{}.String())
	assert.Equal(t, "+[a]", PhonemeSet{Phonemes: []Phoneme{"a"}, Stress: Stressed}.String())
	assert.Equal(t, "-[a]", PhonemeSet{Phonemes: []Phoneme{"a"}, Stress: Unstressed}.String())
}

func TestStressText(t *testing.T) {
	for _, s := range []Stress{StressAny, Stressed, Unstressed} {
		text, err := s.MarshalText()
		assert.NoError(t, err)

		var back Stress
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	var s Stress
	assert.Error(t, s.UnmarshalText([]byte("loud")))
}
