package engine

import (
	"errors"
	"fmt"
)

// RuntimeError represents an error detected while applying a rule.
//
// Runtime errors include:
//   - Index out of range: flat index resolution beyond the word
//   - Unmatched phoneme: substitution found no alternative to map from
//   - Application limit: one rule applied too many times to one word
//   - Recorder failure: the trace sink rejected an application
type RuntimeError struct {
	// Code identifies the error category.
	Code RuntimeErrorCode

	// Message is a human-readable description.
	Message string

	// RuleLine is the rule-file line of the rule being applied.
	RuleLine int

	// Rule is the rule source text.
	Rule string

	// WordIndex is the position of the word in the batch.
	WordIndex int

	// Position is the start index being applied.
	Position int

	// Err is the underlying cause, if any.
	Err error
}

// RuntimeErrorCode categorizes runtime errors.
type RuntimeErrorCode string

const (
	// ErrCodeIndexOutOfRange indicates a flat index outside the word.
	ErrCodeIndexOutOfRange RuntimeErrorCode = "INDEX_OUT_OF_RANGE"

	// ErrCodeUnmatchedPhoneme indicates the word's phoneme is not among the
	// from alternatives during substitution.
	ErrCodeUnmatchedPhoneme RuntimeErrorCode = "UNMATCHED_PHONEME"

	// ErrCodeApplicationLimit indicates a rule exceeded its per-word quota.
	ErrCodeApplicationLimit RuntimeErrorCode = "APPLICATION_LIMIT_EXCEEDED"

	// ErrCodeRecorderFailed indicates the recorder returned an error.
	ErrCodeRecorderFailed RuntimeErrorCode = "RECORDER_FAILED"
)

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Rule != "" {
		msg = fmt.Sprintf("%s (rule %q line %d, word %d, index %d)",
			msg, e.Rule, e.RuleLine, e.WordIndex, e.Position)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// IsApplicationLimitError returns true if the error is a quota error.
// Uses errors.As to handle wrapped errors.
func IsApplicationLimitError(err error) bool {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Code == ErrCodeApplicationLimit
	}
	return false
}

// CodeOf returns the runtime error code carried by err, if any.
func CodeOf(err error) (RuntimeErrorCode, bool) {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Code, true
	}
	return "", false
}
