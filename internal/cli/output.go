package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/pavsca/internal/compiler"
	"github.com/roach88/pavsca/internal/config"
	"github.com/roach88/pavsca/internal/engine"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Test failure (scenarios failed)
	ExitCommandError = 2 // Command error (bad input, compile or runtime error, etc.)
)

// Error codes for failures that carry no compile or runtime code.
const (
	ErrCodeCommand       = "COMMAND_ERROR"
	ErrCodeInvalidConfig = "INVALID_CONFIG"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeTestFailed    = "TEST_FAILED"
)

// ExitError represents an error with a specific exit code.
// Commands report an ExitError through their OutputFormatter before
// returning it; the entry point only needs to exit with its code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// errorCode returns the machine-readable code for err.
func errorCode(err error) string {
	if code, ok := compiler.CodeOf(err); ok {
		return string(code)
	}
	if code, ok := engine.CodeOf(err); ok {
		return string(code)
	}
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		return ErrCodeInvalidConfig
	}
	return ErrCodeCommand
}

// errorDetails returns structured context for err, if any.
func errorDetails(err error) any {
	var ce *compiler.CompileError
	if errors.As(err, &ce) {
		return map[string]any{"line": ce.Line, "command": ce.Command}
	}
	var re *engine.RuntimeError
	if errors.As(err, &re) {
		return map[string]any{
			"rule_line": re.RuleLine,
			"rule":      re.Rule,
			"word":      re.WordIndex,
			"position":  re.Position,
		}
	}
	return nil
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "UNDEFINED_CATEGORY", "COMMAND_ERROR", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// encoder returns a JSON encoder that leaves IPA and angle brackets unescaped.
func (f *OutputFormatter) encoder() *json.Encoder {
	enc := json.NewEncoder(f.Writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc
}

// Success outputs a successful result in the configured format.
// In text mode data is printed with its default formatting.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return f.encoder().Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
// Text errors go to ErrWriter so they never mix with command output.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return f.encoder().Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	w := f.GetErrWriter()
	fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(w, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err and returns it wrapped in an ExitError with exitCode.
func (f *OutputFormatter) Fail(exitCode int, message string, err error) error {
	exitErr := WrapExitError(exitCode, message, err)
	_ = f.Error(errorCode(err), exitErr.Error(), errorDetails(err))
	return exitErr
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
