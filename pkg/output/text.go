package output

import (
	"context"
	"fmt"
	"io"
	"time"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "sumclean: %d lines in, %d removed, %d out\n",
		report.Summary.OriginalLines,
		report.Summary.RemovedLines,
		report.Summary.FinalLines)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Sumclean Report ===")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Input:  %s\n", report.Metadata.Input)
	fmt.Fprintf(w, "Output: %s\n", report.Metadata.Output)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Original lines: %d\n", report.Summary.OriginalLines)
	fmt.Fprintf(w, "Removed lines:  %d\n", report.Summary.RemovedLines)

	// Per-rule breakdown only when more than one rule is active
	if len(report.Summary.RemovedByRule) > 1 {
		for _, rc := range report.Summary.RemovedByRule {
			fmt.Fprintf(w, "  %-14s %d\n", rc.Rule+":", rc.Removed)
		}
	}

	fmt.Fprintf(w, "Final lines:    %d\n", report.Summary.FinalLines)

	if f.opts.Verbose {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Rules applied: %v\n", report.Metadata.Rules)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(time.Millisecond))
	}

	return nil
}
