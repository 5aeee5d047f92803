package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/pavsca/internal/compiler"
	"github.com/roach88/pavsca/internal/config"
	"github.com/roach88/pavsca/internal/engine"
	"github.com/roach88/pavsca/internal/ir"
	"github.com/roach88/pavsca/internal/store"
	"github.com/roach88/pavsca/internal/word"
)

// Harness is the test execution engine.
// It runs scenarios against a private trace store with fixed run IDs.
type Harness struct {
	store  *store.Store
	runIDs engine.RunIDGenerator
	logger *slog.Logger
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
//
// Execution flow:
// 1. Create fresh in-memory database
// 2. Compile the scenario's rules
// 3. Apply them to the scenario's words, recording every application
// 4. Compare output, error code, and trace against the expectations
//
// Compile and runtime errors are scenario outcomes, reported in the result.
// The returned error is reserved for harness failures.
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(store.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		runIDs: engine.NewFixedGenerator("scenario-" + scenario.Name),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}

	result := NewResult()
	runErr := h.execute(context.Background(), scenario, result)
	if runErr != nil {
		code, ok := errorCode(runErr)
		if !ok {
			return nil, runErr
		}
		result.ErrorCode = code
	}

	evaluate(scenario, result, runErr)
	return result, nil
}

// settings derives the effective configuration for a scenario.
func settings(s *Scenario) config.Config {
	cfg := config.Default()
	if s.Scan != "" {
		cfg.Scan = s.Scan
	}
	cfg.FuseLength = s.FuseLength
	if s.MaxApplications > 0 {
		cfg.MaxApplications = s.MaxApplications
	}
	return cfg
}

// execute compiles and applies the scenario, filling in output and trace.
func (h *Harness) execute(ctx context.Context, s *Scenario, result *Result) error {
	cfg := settings(s)

	prog, err := compiler.ParseProgram(strings.NewReader(s.Rules))
	if err != nil {
		return err
	}
	rules, err := compiler.New(cfg.CompilerOptions()...).CompileProgram(prog)
	if err != nil {
		return err
	}

	words, err := word.ReadList(strings.NewReader(strings.Join(s.Words, "\n")), cfg.WordSubstitutions())
	if err != nil {
		return err
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}

	runID := h.runIDs.Generate()
	err = h.store.BeginRun(ctx, ir.Run{
		ID:         runID,
		RulesPath:  s.Name,
		WordsPath:  s.Name,
		ScanPolicy: cfg.Scan,
		RuleCount:  len(rules),
		WordCount:  len(words),
	})
	if err != nil {
		return err
	}

	opts = append(opts, engine.WithRecorder(h.store, runID), engine.WithLogger(h.logger))
	stats, runErr := engine.New(opts...).Run(ctx, rules, words)
	result.Applications = stats.Applications

	status := ir.RunSucceeded
	if runErr != nil {
		status = ir.RunFailed
	}
	if err := h.store.FinishRun(ctx, runID, status); err != nil {
		return err
	}

	apps, err := h.store.Applications(ctx, runID)
	if err != nil {
		return err
	}
	result.Trace = traceEvents(apps)

	if runErr != nil {
		return runErr
	}
	for _, w := range words {
		result.Output = append(result.Output, w.String())
	}
	return nil
}
