package cleaner

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// SplitLines splits content into lines, keeping each line's terminator.
// A final run of characters with no terminator is still a line. Empty
// content yields no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	var lines []string
	for content != "" {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}

// Clean applies the rules to content and returns the result. Rules are
// evaluated in order; the first matching rule claims the line and is
// credited with its removal. Kept lines are unmodified.
func Clean(content string, rules []Rule) *Result {
	lines := SplitLines(content)

	result := &Result{
		OriginalCount: len(lines),
		RuleCounts:    make([]RuleCount, len(rules)),
	}
	for i, rule := range rules {
		result.RuleCounts[i].Rule = rule.Name
	}

	for _, line := range lines {
		removed := false
		for i, rule := range rules {
			if rule.Match(line) {
				result.RuleCounts[i].Removed++
				result.RemovedCount++
				removed = true
				break
			}
		}
		if !removed {
			result.Lines = append(result.Lines, line)
		}
	}

	result.FinalCount = len(result.Lines)
	return result
}

// CleanFile reads inputPath into memory, cleans it, and writes the kept
// lines to outputPath, overwriting any existing content there. An empty
// outputPath means in-place (outputPath = inputPath). The whole file is
// read before the write begins; a failure mid-write may leave a truncated
// output file.
func CleanFile(ctx context.Context, inputPath, outputPath string, rules []Rule) (*Result, error) {
	if outputPath == "" {
		outputPath = inputPath
	}

	result, err := CheckFile(ctx, inputPath, rules)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputPath, []byte(strings.Join(result.Lines, "")), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputPath, err)
	}

	return result, nil
}

// CheckFile reads inputPath and cleans it in memory without writing
// anything. Used for dry runs.
func CheckFile(ctx context.Context, inputPath string, rules []Rule) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	return Clean(string(data), rules), nil
}
