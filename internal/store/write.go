package store

import (
	"context"
	"fmt"

	"github.com/roach88/pavsca/internal/ir"
)

// BeginRun inserts a run record with status running.
// The run's Status and CreatedAt fields are ignored.
func (s *Store) BeginRun(ctx context.Context, run ir.Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, rules_path, words_path, scan_policy, rule_count, word_count, status, engine_version, ir_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.RulesPath,
		run.WordsPath,
		run.ScanPolicy,
		run.RuleCount,
		run.WordCount,
		ir.RunRunning,
		ir.EngineVersion,
		ir.IRVersion,
	)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// FinishRun moves a running run to a terminal status.
// Returns an error if the run does not exist or has already finished.
func (s *Store) FinishRun(ctx context.Context, runID, status string) error {
	if status != ir.RunSucceeded && status != ir.RunFailed {
		return fmt.Errorf("finish run: invalid terminal status %q", status)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE runs SET status = ?
		WHERE id = ? AND status = ?
	`, status, runID, ir.RunRunning)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish run: no running run with id %q", runID)
	}
	return nil
}

// RecordApplication inserts an application record.
// Uses ON CONFLICT DO NOTHING for idempotency - a duplicate (run_id, seq)
// is silently ignored.
//
// Note: The run referenced by RunID must exist (foreign key constraint).
func (s *Store) RecordApplication(ctx context.Context, app ir.Application) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO applications
		(run_id, seq, rule_line, rule, rule_hash, word_index, position, before, after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, seq) DO NOTHING
	`,
		app.RunID,
		app.Seq,
		app.RuleLine,
		app.Rule,
		app.RuleHash,
		app.WordIndex,
		app.Position,
		app.Before,
		app.After,
	)
	if err != nil {
		return fmt.Errorf("record application: %w", err)
	}
	return nil
}
