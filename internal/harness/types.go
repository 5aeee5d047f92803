package harness

import "github.com/roach88/pavsca/internal/ir"

// TraceEvent is one recorded rule application, without the run-specific
// identifiers, so traces compare equal across runs.
type TraceEvent struct {
	Seq      int64  `json:"seq"`
	RuleLine int    `json:"rule_line"`
	Rule     string `json:"rule"`
	Word     int    `json:"word"`
	Position int    `json:"position"`
	Before   string `json:"before"`
	After    string `json:"after"`
}

// traceEvents converts stored applications to trace events.
func traceEvents(apps []ir.Application) []TraceEvent {
	events := make([]TraceEvent, len(apps))
	for i, app := range apps {
		events[i] = TraceEvent{
			Seq:      app.Seq,
			RuleLine: app.RuleLine,
			Rule:     app.Rule,
			Word:     app.WordIndex,
			Position: app.Position,
			Before:   app.Before,
			After:    app.After,
		}
	}
	return events
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	Pass bool `json:"pass"`

	// Output is the rendered word list. Empty when the run failed.
	Output []string `json:"output"`

	// Applications is the engine's count of rule applications.
	Applications int `json:"applications"`

	// Trace contains every recorded application in seq order.
	Trace []TraceEvent `json:"trace"`

	// ErrorCode is the compile or runtime error code, if the run failed.
	ErrorCode string `json:"error_code,omitempty"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Output: []string{},
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
