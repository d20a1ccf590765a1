// Package cli provides the command-line interface for sumclean.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sumclean/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sumclean",
		Short: "Remove noise lines from session summary files",
		Long: `Sumclean filters noise out of agent session summary markdown files.

It removes:
  - Blank lines (empty or whitespace-only)
  - Bash tool invocation lines (lines starting with "Bash")
  - Tool result lines (lines starting with "⎿")

Rules are selected per run; surviving lines are written back byte-for-byte
in their original order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewCleanCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
