package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/pavsca/internal/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create configuration",
		Long: `Show or create pavsca configuration.

Settings are resolved in this order (highest priority first):
  1. CLI flags (--scan, --fuse-length, --separator)
  2. Config file (--config path.cue)
  3. Defaults`,
	}

	cmd.AddCommand(newConfigShowCommand(rootOpts))
	cmd.AddCommand(newConfigInitCommand(rootOpts))

	return cmd
}

func newConfigShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Show the effective configuration",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)

			cfg, err := opts.loadConfig()
			if err != nil {
				return f.Fail(ExitCommandError, "failed to load config", err)
			}
			if opts.Format == "json" {
				return f.Success(cfg)
			}

			if opts.ConfigPath != "" {
				fmt.Fprintf(f.GetErrWriter(), "Configuration file: %s\n", opts.ConfigPath)
			} else {
				fmt.Fprintln(f.GetErrWriter(), "No configuration file (using defaults)")
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return f.Fail(ExitCommandError, "error marshaling config", err)
			}
			_, err = f.Writer.Write(data)
			return err
		},
	}
}

func newConfigInitCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init <path>",
		Short: "Write the default configuration as a CUE file",
		Long: `Write the built-in defaults to a CUE file that can be edited
and passed back with --config.

Example:
  pavsca config init pavsca.cue
  pavsca apply --config pavsca.cue rules.txt words.txt out.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)
			path := args[0]

			if _, err := os.Stat(path); err == nil {
				return f.Fail(ExitCommandError, fmt.Sprintf("config file already exists: %s", path), nil)
			}

			src, err := config.Format(config.Default())
			if err != nil {
				return f.Fail(ExitCommandError, "error encoding config", err)
			}
			header := "// pavsca configuration. Unknown fields are rejected.\n\n"
			if err := os.WriteFile(path, append([]byte(header), src...), 0o644); err != nil {
				return f.Fail(ExitCommandError, "error writing config", err)
			}

			if opts.Format == "json" {
				return f.Success(map[string]string{"path": path})
			}
			fmt.Fprintf(f.Writer, "✓ Created default configuration: %s\n", path)
			return nil
		},
	}
}
