package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/roach88/pavsca/internal/ir"
	"github.com/roach88/pavsca/internal/word"
)

// Engine applies compiled rules to words.
//
// INVARIANTS:
//   - Rules are applied in the order given, words in list order, indices in
//     increasing order
//   - Repair runs after every successful application, before the next index
//   - Evaluation is single-threaded for determinism
type Engine struct {
	nucleus  word.Nucleus
	scan     ScanPolicy
	maxApps  int
	recorder Recorder
	runID    string
	clock    *Clock
	logger   *slog.Logger
}

// Option allows configuration of engine parameters.
type Option func(*Engine)

// WithScanPolicy sets how the per-word scan bound is computed.
// Default: ScanStale.
func WithScanPolicy(p ScanPolicy) Option {
	return func(e *Engine) {
		e.scan = p
	}
}

// WithNucleus sets the phonemes that anchor a syllable during repair.
// Default: word.DefaultNucleus().
func WithNucleus(n word.Nucleus) Option {
	return func(e *Engine) {
		e.nucleus = n
	}
}

// WithMaxApplications sets the per-rule, per-word application quota.
// Default: DefaultMaxApplications.
func WithMaxApplications(n int) Option {
	return func(e *Engine) {
		e.maxApps = n
	}
}

// WithRecorder sends every application, tagged with runID, to r.
func WithRecorder(r Recorder, runID string) Option {
	return func(e *Engine) {
		e.recorder = r
		e.runID = runID
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		nucleus: word.DefaultNucleus(),
		scan:    ScanStale,
		maxApps: DefaultMaxApplications,
		clock:   NewClock(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stats summarizes a run.
type Stats struct {
	Rules        int `json:"rules"`
	Words        int `json:"words"`
	Applications int `json:"applications"`
}

// Run applies every rule, in order, to every word. Words are mutated in
// place. The context is checked between rules.
//
// On error the words are left partially mutated; there is no rollback.
func (e *Engine) Run(ctx context.Context, rules []*ir.Rule, words []*word.Word) (Stats, error) {
	stats := Stats{Rules: len(rules), Words: len(words)}
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		n, err := e.Apply(ctx, rule, words)
		stats.Applications += n
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// Apply applies one rule to every word and returns the number of
// applications made.
func (e *Engine) Apply(ctx context.Context, rule *ir.Rule, words []*word.Word) (int, error) {
	hash := ir.RuleHash(rule)
	total := 0
	for wi, w := range words {
		n, err := e.applyToWord(ctx, rule, hash, wi, w)
		total += n
		if err != nil {
			var re *RuntimeError
			if errors.As(err, &re) && re.Rule == "" {
				re.Rule = rule.Source
				re.RuleLine = rule.Line
				re.WordIndex = wi
			}
			e.logger.Error("rule application failed",
				"line", rule.Line,
				"rule", rule.Source,
				"word", wi,
				"error", err,
			)
			return total, err
		}
	}
	e.logger.Info("rule applied",
		"line", rule.Line,
		"rule", rule.Source,
		"applications", total,
	)
	return total, nil
}

// applyToWord scans every candidate start index of one word.
func (e *Engine) applyToWord(ctx context.Context, rule *ir.Rule, hash string, wi int, w *word.Word) (int, error) {
	quota := NewQuota(e.maxApps)
	initial := w.Len()
	for i := 0; i <= e.scan.bound(initial, w.Len()); i++ {
		if !CanApplyAt(rule, w, i) {
			continue
		}
		if err := quota.Check(); err != nil {
			var re *RuntimeError
			if errors.As(err, &re) {
				re.Position = i
			}
			return quota.Current() - 1, err
		}

		before := w.String()
		if err := ApplyAt(rule, w, i); err != nil {
			return quota.Current() - 1, err
		}
		w.Repair(e.nucleus)
		after := w.String()

		e.logger.Debug("applied rule at index",
			"line", rule.Line,
			"rule", rule.Source,
			"word", wi,
			"index", i,
			"before", before,
			"after", after,
		)

		if e.recorder != nil {
			app := ir.Application{
				RunID:     e.runID,
				Seq:       e.clock.Next(),
				RuleLine:  rule.Line,
				Rule:      rule.Source,
				RuleHash:  hash,
				WordIndex: wi,
				Position:  i,
				Before:    before,
				After:     after,
			}
			if err := e.recorder.RecordApplication(ctx, app); err != nil {
				return quota.Current(), &RuntimeError{
					Code:     ErrCodeRecorderFailed,
					Message:  "recording application",
					Position: i,
					Err:      err,
				}
			}
		}
	}
	return quota.Current(), nil
}
