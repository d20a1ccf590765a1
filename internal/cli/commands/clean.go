package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sumclean/pkg/cleaner"
	"sumclean/pkg/config"
	"sumclean/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// CleanOptions holds command-line options for the clean command.
type CleanOptions struct {
	Config  string
	Out     string
	InPlace bool
	Rules   []string
	Check   bool
	Format  string
	Verbose bool
	Quiet   bool
}

// NewCleanCommand creates the clean command.
func NewCleanCommand() *cobra.Command {
	opts := &CleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean [input-file]",
		Short: "Remove noise lines from a summary file",
		Long: `Clean a summary file by removing lines matched by the active rules.

The input defaults to summary.md and the cleaned content is written to
summary_cleaned.md unless --out or --in-place is given. Rules default to
blank and bash-prefix; use --rule to select others:

  sumclean clean --rule tool-result session.md

Exit codes:
  0 - Cleaned successfully (or --check found nothing to remove)
  1 - --check found lines that would be removed
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (optional)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Output file path")
	cmd.Flags().BoolVar(&opts.InPlace, "in-place", false, "Overwrite the input file")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Rule(s) to apply, in order (can be repeated)")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Report what would be removed without writing")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", "text", "Report format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show run details in the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runClean(cmd *cobra.Command, args []string, opts *CleanOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.InPlace && opts.Out != "" {
		return errors.New("--in-place and --out are mutually exclusive")
	}

	// Load configuration (defaults when no config file given)
	cfg, err := config.Load(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI overrides
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if opts.Out != "" {
		cfg.Output = opts.Out
	}
	if opts.InPlace {
		cfg.Output = cfg.Input
	}
	if len(opts.Rules) > 0 {
		cfg.Rules = opts.Rules
	}

	// Re-validate: CLI overrides may name unknown rules
	if err := config.Validate(cfg); err != nil {
		return err
	}

	rules, err := cfg.ResolveRules()
	if err != nil {
		return err
	}

	start := time.Now()

	var result *cleaner.Result
	if opts.Check {
		result, err = cleaner.CheckFile(ctx, cfg.Input, rules)
	} else {
		result, err = cleaner.CleanFile(ctx, cfg.Input, cfg.Output, rules)
	}
	if err != nil {
		return err
	}

	// Create report
	report := output.NewReport(result, cfg.Input, cfg.Output, time.Since(start))

	// Create formatter
	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	// Output report
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// In check mode, signal removable lines via exit code
	if opts.Check && report.HasRemovals() {
		ExitCode = 1
	}

	return nil
}

func createFormatter(opts *CleanOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (use text or json)", opts.Format)
	}
}
