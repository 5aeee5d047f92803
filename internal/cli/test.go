package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/pavsca/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)
	Golden string // golden file directory, optional
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run scenario harness",
		Long: `Run YAML scenarios through the compiler and engine.

Each scenario names its rules, input words, and either the expected
output words or the expected error code. With --golden, the recorded
trace of every scenario is also compared against <dir>/<name>.golden.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, malformed scenario, etc.)

Examples:
  pavsca test ./scenarios
  pavsca test ./scenarios --filter "*_deletion"
  pavsca test ./scenarios --golden ./scenarios/golden --update
  pavsca test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files (requires --golden)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern on the scenario name")
	cmd.Flags().StringVar(&opts.Golden, "golden", "", "directory of golden trace files")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	if opts.Update && opts.Golden == "" {
		return f.Fail(ExitCommandError, "--update requires --golden", nil)
	}
	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return f.Fail(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir), nil)
	}

	scenarios, err := harness.Discover(scenariosDir, opts.Filter)
	if err != nil {
		return f.Fail(ExitCommandError, "failed to load scenarios", err)
	}

	if len(scenarios) == 0 {
		if opts.Format == "json" {
			return f.Success(TestResult{Scenarios: []ScenarioResult{}})
		}
		fmt.Fprintln(f.Writer, "No scenarios found.")
		return nil
	}

	result := TestResult{
		Scenarios: make([]ScenarioResult, 0, len(scenarios)),
		Total:     len(scenarios),
	}
	for _, scenario := range scenarios {
		f.VerboseLog("Running scenario: %s", scenario.Name)
		scenResult := runScenario(scenario, opts)
		if opts.Format != "json" {
			printScenarioResult(f.Writer, scenResult)
		}

		result.Scenarios = append(result.Scenarios, scenResult)
		if scenResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		return outputTestJSON(f, result)
	}
	return outputTestText(f.Writer, result)
}

// runScenario executes a single scenario and applies the golden check.
func runScenario(scenario *harness.Scenario, opts *TestOptions) ScenarioResult {
	result, err := harness.Run(scenario)
	if err != nil {
		return ScenarioResult{
			Name:   scenario.Name,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	sr := ScenarioResult{
		Name:   scenario.Name,
		Pass:   result.Pass,
		Errors: result.Errors,
	}
	if opts.Golden == "" {
		return sr
	}

	if err := checkGolden(scenario.Name, result, opts.Golden, opts.Update); err != nil {
		sr.Pass = false
		sr.Errors = append(sr.Errors, err.Error())
	}
	return sr
}

// checkGolden compares the result snapshot with <dir>/<name>.golden, or
// rewrites that file when update is set.
func checkGolden(name string, result *harness.Result, dir string, update bool) error {
	data, err := harness.Snapshot(name, result)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}

	path := goldenFilePath(dir, name)
	if update {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create golden directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write golden file: %w", err)
		}
		return nil
	}

	golden, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read golden file: %w", err)
	}
	if !bytes.Equal(golden, data) {
		return fmt.Errorf("trace does not match golden file %s (run with --update to regenerate)", path)
	}
	return nil
}

// goldenFilePath returns the path to the golden file for a scenario.
func goldenFilePath(dir, name string) string {
	return filepath.Join(dir, name+".golden")
}

func printScenarioResult(w io.Writer, r ScenarioResult) {
	if r.Pass {
		fmt.Fprintf(w, "✓ %s\n", r.Name)
		return
	}
	fmt.Fprintf(w, "✗ %s\n", r.Name)
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
}

// outputTestJSON outputs the test result as JSON.
func outputTestJSON(f *OutputFormatter, result TestResult) error {
	response := CLIResponse{
		Status: "ok",
		Data:   result,
	}
	if result.Failed > 0 {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    ErrCodeTestFailed,
			Message: fmt.Sprintf("%d scenario(s) failed", result.Failed),
		}
	}

	encoder := json.NewEncoder(f.Writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}

// outputTestText outputs the test summary as text.
func outputTestText(w io.Writer, result TestResult) error {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All scenarios passed")
	return nil
}
