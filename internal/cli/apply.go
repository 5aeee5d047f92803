package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/pavsca/internal/compiler"
	"github.com/roach88/pavsca/internal/config"
	"github.com/roach88/pavsca/internal/engine"
	"github.com/roach88/pavsca/internal/ir"
	"github.com/roach88/pavsca/internal/store"
	"github.com/roach88/pavsca/internal/word"
)

// ApplyOptions holds flags for the apply command.
type ApplyOptions struct {
	*RootOptions
	Database   string
	Scan       string
	FuseLength bool
	Separator  string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs engine.RunIDGenerator
}

// ApplyResult summarizes a successful apply.
type ApplyResult struct {
	RunID        string `json:"run_id,omitempty"`
	Rules        int    `json:"rules"`
	Words        int    `json:"words"`
	Applications int    `json:"applications"`
	Output       string `json:"output"`
}

// String renders the summary for text output.
func (r ApplyResult) String() string {
	s := fmt.Sprintf("Applied %d rules to %d words (%d applications), wrote %s",
		r.Rules, r.Words, r.Applications, r.Output)
	if r.RunID != "" {
		s += fmt.Sprintf("\nRun: %s", r.RunID)
	}
	return s
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	return newApplyCommand(&ApplyOptions{RootOptions: rootOpts})
}

func newApplyCommand(opts *ApplyOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <rules> <words> <output>",
		Short: "Apply sound change rules to a word list",
		Long: `Apply every rule in the rules file, in order, to every word in the
words file and write the changed words to the output file.

Any compile or runtime error aborts the run; the output file is only
written when every rule has been applied. With --db, each application
is recorded in a SQLite trace database for later inspection with
"pavsca trace".

Examples:
  pavsca apply rules.txt words.txt out.txt
  pavsca apply --db trace.db --scan recompute rules.txt words.txt out.txt
  pavsca apply --config pavsca.cue --separator "\n" rules.txt words.txt out.txt`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(opts, args[0], args[1], args[2], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record applications in this SQLite database")
	cmd.Flags().StringVar(&opts.Scan, "scan", "", "scan policy (stale|recompute), overrides config")
	cmd.Flags().BoolVar(&opts.FuseLength, "fuse-length", false, "fuse the length mark onto rule literals, overrides config")
	cmd.Flags().StringVar(&opts.Separator, "separator", "", "text placed between output words, overrides config")

	return cmd
}

// effectiveConfig loads the config file and applies explicitly set flags.
func (o *ApplyOptions) effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("scan") {
		cfg.Scan = o.Scan
	}
	if flags.Changed("fuse-length") {
		cfg.FuseLength = o.FuseLength
	}
	if flags.Changed("separator") {
		cfg.Separator = o.Separator
	}
	return cfg, nil
}

func runApply(opts *ApplyOptions, rulesPath, wordsPath, outPath string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	cfg, err := opts.effectiveConfig(cmd)
	if err != nil {
		return f.Fail(ExitCommandError, "failed to load config", err)
	}
	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		return f.Fail(ExitCommandError, "invalid settings", err)
	}

	logger.Debug("compiling rules", "path", rulesPath)
	rules, err := compileRuleFile(rulesPath, cfg)
	if err != nil {
		return f.Fail(ExitCommandError, "failed to compile rules", err)
	}

	words, err := readWordFile(wordsPath, cfg)
	if err != nil {
		return f.Fail(ExitCommandError, "failed to read words", err)
	}
	logger.Debug("inputs loaded", "rules", len(rules), "words", len(words))

	// Setup signal handling so an interrupt aborts between rules
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, aborting run", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var runID string
	finish := func(string) {}
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return f.Fail(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()

		runIDs := opts.RunIDs
		if runIDs == nil {
			runIDs = engine.UUIDv7Generator{}
		}
		runID = runIDs.Generate()
		err = st.BeginRun(ctx, ir.Run{
			ID:         runID,
			RulesPath:  rulesPath,
			WordsPath:  wordsPath,
			ScanPolicy: cfg.Scan,
			RuleCount:  len(rules),
			WordCount:  len(words),
		})
		if err != nil {
			return f.Fail(ExitCommandError, "failed to begin run", err)
		}
		logger.Info("recording run", "run_id", runID, "db", opts.Database)

		engineOpts = append(engineOpts, engine.WithRecorder(st, runID))
		finish = func(status string) {
			// The run context may be cancelled; the status is still recorded.
			if err := st.FinishRun(context.Background(), runID, status); err != nil {
				logger.Error("error finishing run", "run_id", runID, "error", err)
			}
		}
	}

	engineOpts = append(engineOpts, engine.WithLogger(logger))
	stats, err := engine.New(engineOpts...).Run(ctx, rules, words)
	if err != nil {
		finish(ir.RunFailed)
		if errors.Is(err, context.Canceled) {
			return f.Fail(ExitCommandError, "run interrupted", err)
		}
		return f.Fail(ExitCommandError, "failed to apply rules", err)
	}

	if err := os.WriteFile(outPath, []byte(word.Render(words, cfg.Separator)), 0o644); err != nil {
		finish(ir.RunFailed)
		return f.Fail(ExitCommandError, "failed to write output", err)
	}
	finish(ir.RunSucceeded)

	return f.Success(ApplyResult{
		RunID:        runID,
		Rules:        stats.Rules,
		Words:        stats.Words,
		Applications: stats.Applications,
		Output:       outPath,
	})
}

// compileRuleFile parses and compiles a rule file under cfg.
func compileRuleFile(path string, cfg config.Config) ([]*ir.Rule, error) {
	prog, err := parseRuleFile(path)
	if err != nil {
		return nil, err
	}
	return compiler.New(cfg.CompilerOptions()...).CompileProgram(prog)
}

func parseRuleFile(path string) (*compiler.Program, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return compiler.ParseProgram(file)
}

func readWordFile(path string, cfg config.Config) ([]*word.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return word.ReadList(file, cfg.WordSubstitutions())
}
