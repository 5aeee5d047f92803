package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/pavsca/internal/ir"
)

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run record with minimal required fields.
func createTestRun(id string) ir.Run {
	return ir.Run{
		ID:         id,
		RulesPath:  "rules.txt",
		WordsPath:  "words.txt",
		ScanPolicy: "stale",
		RuleCount:  2,
		WordCount:  3,
	}
}

// createTestApplication creates an application record for a run.
func createTestApplication(runID string, seq int64, wordIndex int, before, after string) ir.Application {
	return ir.Application{
		RunID:     runID,
		Seq:       seq,
		RuleLine:  int(seq),
		Rule:      "p/f/_",
		RuleHash:  "test-hash",
		WordIndex: wordIndex,
		Position:  0,
		Before:    before,
		After:     after,
	}
}

// beginTestRun inserts a run and fails the test on error.
func beginTestRun(t *testing.T, s *Store, id string) {
	t.Helper()
	if err := s.BeginRun(context.Background(), createTestRun(id)); err != nil {
		t.Fatalf("BeginRun(%q) failed: %v", id, err)
	}
}
