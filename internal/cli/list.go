package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcelocantos/sift/internal/atom"
)

// NewListCommand lists the available atoms with their aliases and usage.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list available atoms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, s := range atom.Default().All() {
				fmt.Fprintf(w, "%-26s %-14s %s\n", s.Usage, strings.Join(s.Aliases, ","), s.Summary)
			}
		},
	}
}
