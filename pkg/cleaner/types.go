// Package cleaner provides the line-filtering engine for summary files.
package cleaner

// RuleCount records how many lines a single rule removed.
type RuleCount struct {
	// Rule is the name of the rule.
	Rule string

	// Removed is the number of lines this rule removed.
	Removed int
}

// Result holds the outcome of a cleaning pass.
type Result struct {
	// OriginalCount is the number of lines read from the input.
	OriginalCount int

	// RemovedCount is the total number of lines removed.
	RemovedCount int

	// FinalCount is the number of lines kept.
	FinalCount int

	// RuleCounts breaks RemovedCount down per rule, in rule order.
	RuleCounts []RuleCount

	// Lines are the kept lines, terminators intact, in input order.
	Lines []string
}
