// Package output provides formatting for cleaning reports.
package output

import (
	"time"

	"sumclean/pkg/cleaner"
)

// Report is the complete cleaning output.
type Report struct {
	// Summary provides the line counts.
	Summary Summary

	// Metadata provides context about the cleaning run.
	Metadata Metadata
}

// Summary provides the line counts.
type Summary struct {
	// OriginalLines is the number of lines read from the input.
	OriginalLines int

	// RemovedLines is the total number of lines removed.
	RemovedLines int

	// FinalLines is the number of lines written to the output.
	FinalLines int

	// RemovedByRule breaks RemovedLines down per rule, in rule order.
	RemovedByRule []cleaner.RuleCount
}

// Metadata provides context about the cleaning run.
type Metadata struct {
	// Input is the file that was cleaned.
	Input string

	// Output is the resolved path the cleaned content was written to.
	Output string

	// Rules lists the rule names that were applied, in order.
	Rules []string

	// CleanedAt is when the cleaning was performed.
	CleanedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}

// NewReport creates a Report from a cleaning result.
func NewReport(result *cleaner.Result, input, outputPath string, duration time.Duration) *Report {
	report := &Report{
		Summary: Summary{
			OriginalLines: result.OriginalCount,
			RemovedLines:  result.RemovedCount,
			FinalLines:    result.FinalCount,
			RemovedByRule: result.RuleCounts,
		},
		Metadata: Metadata{
			Input:     input,
			Output:    outputPath,
			CleanedAt: time.Now(),
			Duration:  duration,
		},
	}

	for _, rc := range result.RuleCounts {
		report.Metadata.Rules = append(report.Metadata.Rules, rc.Rule)
	}

	return report
}

// HasRemovals returns true if any lines were removed.
func (r *Report) HasRemovals() bool {
	return r.Summary.RemovedLines > 0
}
