package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sumclean/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a sumclean configuration file without cleaning anything.

Checks:
  - YAML syntax
  - Required fields
  - Rule names resolve (built-in or custom)
  - Custom rule declarations
  - Input file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	// Load and validate config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Input:  %s\n", cfg.Input)
	fmt.Printf("  Output: %s\n", cfg.Output)
	fmt.Printf("  Rules:  %d\n", len(cfg.Rules))

	// List rules
	fmt.Printf("\nRules:\n")
	custom := make(map[string]string, len(cfg.CustomRules))
	for _, cr := range cfg.CustomRules {
		custom[cr.Name] = cr.Prefix
	}
	for i, name := range cfg.Rules {
		if prefix, ok := custom[name]; ok {
			fmt.Printf("  %d. %s (custom, prefix %q)\n", i+1, name, prefix)
		} else {
			fmt.Printf("  %d. %s\n", i+1, name)
		}
	}

	// Check if the input file exists (warning only)
	if _, err := os.Stat(cfg.Input); err != nil {
		fmt.Printf("\nWarning: input file %s not found\n", cfg.Input)
	} else {
		fmt.Printf("\nInput file found: %s\n", cfg.Input)
	}

	return nil
}
