package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pavsca/internal/compiler"
	"github.com/roach88/pavsca/internal/ir"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	FuseLength bool
}

// CompiledRule is one compiled rule as reported by the compile command.
type CompiledRule struct {
	Line     int       `json:"line"`
	Source   string    `json:"source"`
	Compiled string    `json:"compiled"`
	Hash     string    `json:"hash"`
	Pairs    []ir.Pair `json:"pairs"`
}

// CompilationResult holds the output of compiling a rule file.
type CompilationResult struct {
	Rules      []CompiledRule          `json:"rules"`
	Categories map[string][]ir.Phoneme `json:"categories"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <rules>",
		Short: "Compile a rule file and print the aligned pairs",
		Long: `Compile every rule in a rule file and print its aligned
(from, to) phoneme-set pairs and rule hash.

Definitions are processed in file order, so each rule sees the
categories defined above it.

Examples:
  pavsca compile rules.txt
  pavsca compile --fuse-length rules.txt
  pavsca compile rules.txt --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.FuseLength, "fuse-length", false, "fuse the length mark onto rule literals, overrides config")

	return cmd
}

func runCompile(opts *CompileOptions, rulesPath string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	cfg, err := opts.loadConfig()
	if err != nil {
		return f.Fail(ExitCommandError, "failed to load config", err)
	}
	if cmd.Flags().Changed("fuse-length") {
		cfg.FuseLength = opts.FuseLength
	}

	prog, err := parseRuleFile(rulesPath)
	if err != nil {
		return f.Fail(ExitCommandError, "failed to read rules", err)
	}

	c := compiler.New(cfg.CompilerOptions()...)
	rules, err := c.CompileProgram(prog)
	if err != nil {
		return f.Fail(ExitCommandError, "failed to compile rules", err)
	}

	result := CompilationResult{
		Rules:      make([]CompiledRule, len(rules)),
		Categories: make(map[string][]ir.Phoneme),
	}
	for i, rule := range rules {
		f.VerboseLog("Compiled rule at line %d: %s", rule.Line, rule.Source)
		result.Rules[i] = CompiledRule{
			Line:     rule.Line,
			Source:   rule.Source,
			Compiled: rule.String(),
			Hash:     ir.RuleHash(rule),
			Pairs:    rule.Pairs,
		}
	}
	reg := c.Registry()
	for _, name := range reg.Names() {
		cat, _ := reg.Lookup(name)
		result.Categories[name] = cat.Phonemes
	}

	return outputCompileSuccess(f, result)
}

// outputCompileSuccess outputs successful compilation results.
func outputCompileSuccess(f *OutputFormatter, result CompilationResult) error {
	if f.Format == "json" {
		return f.Success(result)
	}

	fmt.Fprintf(f.Writer, "✓ Compiled %d rule(s), %d category name(s)\n", len(result.Rules), len(result.Categories))
	if len(result.Rules) > 0 {
		fmt.Fprintln(f.Writer)
		fmt.Fprintln(f.Writer, "Rules:")
	}
	for _, r := range result.Rules {
		fmt.Fprintf(f.Writer, "  line %d: %s\n", r.Line, r.Source)
		fmt.Fprintf(f.Writer, "    %s\n", r.Compiled)
		fmt.Fprintf(f.Writer, "    hash %s\n", r.Hash)
	}
	return nil
}
