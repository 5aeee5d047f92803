package compiler

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes compile errors.
type ErrorCode string

const (
	// ErrCodeMalformedDefine indicates a definition without '=' or with an empty side.
	ErrCodeMalformedDefine ErrorCode = "MALFORMED_DEFINE"

	// ErrCodeUndefinedCategory indicates a category reference absent from the registry.
	ErrCodeUndefinedCategory ErrorCode = "UNDEFINED_CATEGORY"

	// ErrCodeMissingInsertionPoint indicates an environment without '_'.
	ErrCodeMissingInsertionPoint ErrorCode = "MISSING_INSERTION_POINT"

	// ErrCodeMultipleInsertionPoints indicates an environment with more than one '_'.
	ErrCodeMultipleInsertionPoints ErrorCode = "MULTIPLE_INSERTION_POINTS"

	// ErrCodeMalformedRule indicates a rule without exactly three '/'-separated segments.
	ErrCodeMalformedRule ErrorCode = "MALFORMED_RULE"

	// ErrCodeUnterminatedCategory indicates '<' with no closing '>'.
	ErrCodeUnterminatedCategory ErrorCode = "UNTERMINATED_CATEGORY"

	// ErrCodeDanglingStress indicates a stress prefix with no token after it.
	ErrCodeDanglingStress ErrorCode = "DANGLING_STRESS"
)

// CompileError represents a compilation error with its source line.
type CompileError struct {
	Code    ErrorCode
	Line    int    // 1-based rule-file line, 0 if unknown
	Command string // offending command text
	Message string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Command != "" {
		msg = fmt.Sprintf("%s (in %q)", msg, e.Command)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// CodeOf returns the compile error code carried by err, if any.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) (ErrorCode, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return "", false
}

// withSource fills in the command and line on a CompileError that lacks them.
func withSource(err error, line int, command string) error {
	var ce *CompileError
	if !errors.As(err, &ce) {
		return err
	}
	if ce.Line == 0 {
		ce.Line = line
	}
	if ce.Command == "" {
		ce.Command = command
	}
	return err
}
