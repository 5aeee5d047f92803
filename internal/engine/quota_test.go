package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuota_WithinLimit(t *testing.T) {
	q := NewQuota(10)

	for i := 0; i < 10; i++ {
		assert.NoError(t, q.Check(), "application %d should be allowed", i+1)
	}
	assert.Equal(t, 10, q.Current())
}

func TestQuota_ExceedsLimit(t *testing.T) {
	q := NewQuota(5)

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Check())
	}

	err := q.Check()
	require.Error(t, err)
	assert.True(t, IsApplicationLimitError(err))
	assert.Contains(t, err.Error(), "limit 5")
}

func TestIsApplicationLimitError(t *testing.T) {
	assert.False(t, IsApplicationLimitError(nil))
	assert.False(t, IsApplicationLimitError(&RuntimeError{Code: ErrCodeUnmatchedPhoneme}))
	assert.True(t, IsApplicationLimitError(&RuntimeError{Code: ErrCodeApplicationLimit}))
}

func TestRuntimeError_Error(t *testing.T) {
	err := &RuntimeError{
		Code:      ErrCodeApplicationLimit,
		Message:   "too many",
		Rule:      "/e/_#",
		RuleLine:  3,
		WordIndex: 1,
		Position:  8,
	}

	assert.Equal(t, `APPLICATION_LIMIT_EXCEEDED: too many (rule "/e/_#" line 3, word 1, index 8)`, err.Error())
}
