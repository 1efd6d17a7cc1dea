package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds the flags consumed by the run path.
type RootOptions struct {
	File       string
	ConfigPath string
	TracePath  string
	TraceLevel string
}

// NewRootCommand builds the sift command tree. The root command itself runs
// a program; `list` and `version` are subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sift [flags] ATOM [ARG...] ...",
		Short: "line-oriented text transformation pipelines",
		Long: `sift runs every input line through a pipeline of atoms. Each atom
transforms the line, drops it, or emits it immediately past the rest of the
program. Run 'sift list' for the atom table.`,
		Example: `  sift filter-range '^\[Section 2' '^\[' filter '^name' -f config.ini
  tail -f app.log | sift filter 'ERROR|WARN' enumerate`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := Run(cmd.Context(), opts, args, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	// Program tokens are mostly regexes and may begin with '-', so flag
	// parsing stops at the first non-flag token.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read input from FILE instead of stdin")
	cmd.Flags().StringVar(&opts.TracePath, "trace", "", "append a JSONL run trace to FILE")
	cmd.Flags().StringVar(&opts.TraceLevel, "trace-level", "", "trace detail: info or debug")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/sift/config.yaml)")

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewVersionCommand())

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

// exitError carries a run's exit code through cobra. The message is empty
// because the failure was already reported on stderr.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		// Flag and usage errors from cobra itself.
		fmt.Fprintf(os.Stderr, "sift: %v\n", err)
		return 1
	}
	return 0
}
