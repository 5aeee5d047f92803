package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/pavsca/internal/ir"
)

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = errors.New("run not found")

// ListRuns returns every run ordered by id.
// Returns an empty slice (not nil) if the store holds no runs.
func (s *Store) ListRuns(ctx context.Context) ([]ir.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rules_path, words_path, scan_policy, rule_count, word_count, status, created_at
		FROM runs
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []ir.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// ReadRun retrieves a single run by ID.
// Returns ErrRunNotFound if no such run exists.
func (s *Store) ReadRun(ctx context.Context, runID string) (ir.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, rules_path, words_path, scan_policy, rule_count, word_count, status, created_at
		FROM runs
		WHERE id = ?
	`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return run, err
}

// Applications returns every application of a run ordered by seq.
// Returns an empty slice (not nil) if the run recorded none.
func (s *Store) Applications(ctx context.Context, runID string) ([]ir.Application, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, seq, rule_line, rule, rule_hash, word_index, position, before, after
		FROM applications
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	apps := []ir.Application{}
	for rows.Next() {
		var app ir.Application
		if err := rows.Scan(
			&app.RunID, &app.Seq, &app.RuleLine, &app.Rule, &app.RuleHash,
			&app.WordIndex, &app.Position, &app.Before, &app.After,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}

	return apps, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (ir.Run, error) {
	var run ir.Run
	if err := row.Scan(
		&run.ID, &run.RulesPath, &run.WordsPath, &run.ScanPolicy,
		&run.RuleCount, &run.WordCount, &run.Status, &run.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return run, err
		}
		return run, fmt.Errorf("scan run: %w", err)
	}
	return run, nil
}
