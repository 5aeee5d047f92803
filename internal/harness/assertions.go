package harness

import (
	"fmt"
	"slices"

	"github.com/roach88/pavsca/internal/compiler"
	"github.com/roach88/pavsca/internal/engine"
)

// errorCode extracts the compile or runtime error code carried by err.
func errorCode(err error) (string, bool) {
	if code, ok := compiler.CodeOf(err); ok {
		return string(code), true
	}
	if code, ok := engine.CodeOf(err); ok {
		return string(code), true
	}
	return "", false
}

// evaluate checks the result of a run against the scenario's expectations
// and records every mismatch on the result.
func evaluate(s *Scenario, result *Result, runErr error) {
	if s.Error != "" {
		assertError(s, result, runErr)
	} else if runErr != nil {
		result.AddError(fmt.Sprintf("unexpected error: %v", runErr))
	} else {
		assertOutput(s, result)
	}

	assertApplications(s, result)
	assertTraceConsistent(result)
}

func assertError(s *Scenario, result *Result, runErr error) {
	if runErr == nil {
		result.AddError(fmt.Sprintf("expected error %s, run succeeded", s.Error))
		return
	}
	if result.ErrorCode != s.Error {
		result.AddError(fmt.Sprintf("expected error %s, got: %v", s.Error, runErr))
	}
}

func assertOutput(s *Scenario, result *Result) {
	if slices.Equal(s.Expect, result.Output) {
		return
	}
	for i, want := range s.Expect {
		var got string
		if i < len(result.Output) {
			got = result.Output[i]
		}
		if got != want {
			result.AddError(fmt.Sprintf("word %d (%s): expected %q, got %q", i, s.Words[i], want, got))
		}
	}
}

func assertApplications(s *Scenario, result *Result) {
	if s.Applications == nil {
		return
	}
	if result.Applications != *s.Applications {
		result.AddError(fmt.Sprintf("expected %d applications, got %d", *s.Applications, result.Applications))
	}
}

// assertTraceConsistent checks the stored trace against the engine's count
// and checks that each word's applications chain together.
func assertTraceConsistent(result *Result) {
	if len(result.Trace) != result.Applications {
		result.AddError(fmt.Sprintf("trace recorded %d applications, engine reported %d",
			len(result.Trace), result.Applications))
	}

	last := make(map[int]string)
	for _, ev := range result.Trace {
		if prev, ok := last[ev.Word]; ok && prev != ev.Before {
			result.AddError(fmt.Sprintf("trace seq %d: word %d before %q does not follow %q",
				ev.Seq, ev.Word, ev.Before, prev))
		}
		last[ev.Word] = ev.After
	}
}
