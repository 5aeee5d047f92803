package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/roach88/pavsca/internal/ir"
	"github.com/roach88/pavsca/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	RunID    string
	Word     int // optional - filter to one word index, -1 for all
}

// WordResult is the final form of one changed word.
type WordResult struct {
	Index int    `json:"index"`
	Form  string `json:"form"`
}

// RunTrace holds the trace output for one run.
type RunTrace struct {
	Run          ir.Run           `json:"run"`
	Applications []ir.Application `json:"applications"`
	Words        []WordResult     `json:"words"`
	RulesFired   int              `json:"rules_fired"`
	Broken       []int            `json:"broken,omitempty"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect recorded runs",
		Long: `Inspect runs recorded by "pavsca apply --db".

Without --run, lists every run in the database. With --run, shows the
run's applications in order and the final form of each changed word,
replayed from the application log.

Examples:
  pavsca trace --db ./trace.db
  pavsca trace --db ./trace.db --run 0190a5c4-...
  pavsca trace --db ./trace.db --run 0190a5c4-... --word 3
  pavsca trace --db ./trace.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "run ID to show")
	cmd.Flags().IntVar(&opts.Word, "word", -1, "only show applications to this word index")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	f := opts.formatter(cmd)

	// Opening would create an empty database
	if _, err := os.Stat(opts.Database); err != nil {
		return f.Fail(ExitCommandError, "database not found", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return f.Fail(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if opts.RunID == "" {
		runs, err := st.ListRuns(ctx)
		if err != nil {
			return f.Fail(ExitCommandError, "failed to list runs", err)
		}
		if opts.Format == "json" {
			return f.Success(runs)
		}
		outputRunsText(f.Writer, runs)
		return nil
	}

	state, err := st.GetRunState(ctx, opts.RunID)
	if errors.Is(err, store.ErrRunNotFound) {
		_ = f.Error(ErrCodeNotFound, fmt.Sprintf("run not found: %s", opts.RunID), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", opts.RunID))
	}
	if err != nil {
		return f.Fail(ExitCommandError, "failed to read run", err)
	}

	result := buildRunTrace(state, opts.Word)
	if opts.Format == "json" {
		return f.Success(result)
	}
	outputRunText(f.Writer, result)
	return nil
}

// buildRunTrace converts replayed run state to trace output.
// When word is non-negative, only that word's applications and form are kept.
func buildRunTrace(state store.RunState, word int) RunTrace {
	result := RunTrace{
		Run:          state.Run,
		Applications: []ir.Application{},
		Words:        []WordResult{},
		RulesFired:   state.RulesFired,
		Broken:       state.Broken,
	}
	for _, app := range state.Applications {
		if word >= 0 && app.WordIndex != word {
			continue
		}
		result.Applications = append(result.Applications, app)
	}
	for idx, form := range state.Words {
		if word >= 0 && idx != word {
			continue
		}
		result.Words = append(result.Words, WordResult{Index: idx, Form: form})
	}
	sort.Slice(result.Words, func(i, j int) bool {
		return result.Words[i].Index < result.Words[j].Index
	})
	return result
}

// outputRunsText prints one line per run.
func outputRunsText(w io.Writer, runs []ir.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s  %-9s  %d rule(s), %d word(s), scan=%s  %s  %s\n",
			r.ID, r.Status, r.RuleCount, r.WordCount, r.ScanPolicy, r.RulesPath, r.CreatedAt)
	}
}

// outputRunText prints a run's applications and final word forms.
func outputRunText(w io.Writer, t RunTrace) {
	r := t.Run
	fmt.Fprintf(w, "Run %s (%s)\n", r.ID, r.Status)
	fmt.Fprintf(w, "  rules: %s (%d), words: %s (%d), scan: %s\n",
		r.RulesPath, r.RuleCount, r.WordsPath, r.WordCount, r.ScanPolicy)
	fmt.Fprintf(w, "  %d application(s), %d rule(s) fired\n", len(t.Applications), t.RulesFired)

	if len(t.Applications) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Applications:")
		for _, app := range t.Applications {
			fmt.Fprintf(w, "  [%d] line %d %s: word %d at %d: %s → %s\n",
				app.Seq, app.RuleLine, app.Rule, app.WordIndex, app.Position, app.Before, app.After)
		}
	}

	if len(t.Words) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Words:")
		for _, wr := range t.Words {
			fmt.Fprintf(w, "  %d: %s\n", wr.Index, wr.Form)
		}
	}

	if len(t.Broken) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "⚠ discontinuous application chain for word(s) %v\n", t.Broken)
	}
}
