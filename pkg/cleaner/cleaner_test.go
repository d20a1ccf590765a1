package cleaner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func variantARules() []Rule {
	return []Rule{BlankRule(), mustBuiltin(RuleBashPrefix)}
}

func mustBuiltin(name string) Rule {
	r, ok := BuiltinRule(name)
	if !ok {
		panic("unknown built-in rule: " + name)
	}
	return r
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single line", "hello\n", []string{"hello\n"}},
		{"no final newline", "hello", []string{"hello"}},
		{"two lines", "a\nb\n", []string{"a\n", "b\n"}},
		{"trailing unterminated", "a\nb", []string{"a\n", "b"}},
		{"blank lines kept as lines", "\n\n", []string{"\n", "\n"}},
		{"crlf stays attached", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitLines() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitLines_Roundtrip(t *testing.T) {
	content := "# Summary\n\nBash ls\n  ⎿ out\nlast line"
	if got := strings.Join(SplitLines(content), ""); got != content {
		t.Errorf("joined lines = %q, want original content %q", got, content)
	}
}

func TestClean_VariantA(t *testing.T) {
	content := "Bash ls\n" + "\n" + "   \n" + "ok\n" + "  Bash echo hi\n"

	result := Clean(content, variantARules())

	if result.OriginalCount != 5 {
		t.Errorf("OriginalCount = %d, want 5", result.OriginalCount)
	}
	if result.RemovedCount != 4 {
		t.Errorf("RemovedCount = %d, want 4", result.RemovedCount)
	}
	if result.FinalCount != 1 {
		t.Errorf("FinalCount = %d, want 1", result.FinalCount)
	}
	if len(result.Lines) != 1 || result.Lines[0] != "ok\n" {
		t.Errorf("Lines = %q, want [\"ok\\n\"]", result.Lines)
	}

	// Per-rule breakdown: 2 blank, 2 bash-prefix
	if result.RuleCounts[0].Rule != RuleBlank || result.RuleCounts[0].Removed != 2 {
		t.Errorf("blank count = %+v, want 2", result.RuleCounts[0])
	}
	if result.RuleCounts[1].Rule != RuleBashPrefix || result.RuleCounts[1].Removed != 2 {
		t.Errorf("bash-prefix count = %+v, want 2", result.RuleCounts[1])
	}
}

func TestClean_VariantB(t *testing.T) {
	content := "⎿ result\n" + "normal line\n" + "  ⎿ indented result\n"

	result := Clean(content, []Rule{mustBuiltin(RuleToolResult)})

	if result.OriginalCount != 3 {
		t.Errorf("OriginalCount = %d, want 3", result.OriginalCount)
	}
	if result.RemovedCount != 2 {
		t.Errorf("RemovedCount = %d, want 2", result.RemovedCount)
	}
	if len(result.Lines) != 1 || result.Lines[0] != "normal line\n" {
		t.Errorf("Lines = %q, want [\"normal line\\n\"]", result.Lines)
	}
}

func TestClean_CountInvariant(t *testing.T) {
	contents := []string{
		"",
		"ok\n",
		"Bash a\nBash b\n\n\nkept\n",
		"⎿ x\nBash y\n   \nplain",
		"a\nb\nc",
	}

	for _, content := range contents {
		result := Clean(content, variantARules())
		if result.FinalCount+result.RemovedCount != result.OriginalCount {
			t.Errorf("content %q: final(%d) + removed(%d) != original(%d)",
				content, result.FinalCount, result.RemovedCount, result.OriginalCount)
		}
	}
}

func TestClean_KeptLinesUnmodified(t *testing.T) {
	content := "first line\n\nsecond  line \nBash drop me\n\tthird\tline\r\nlast"

	result := Clean(content, variantARules())

	want := []string{"first line\n", "second  line \n", "\tthird\tline\r\n", "last"}
	if len(result.Lines) != len(want) {
		t.Fatalf("kept %d lines, want %d: %q", len(result.Lines), len(want), result.Lines)
	}
	for i := range want {
		if result.Lines[i] != want[i] {
			t.Errorf("line[%d] = %q, want %q", i, result.Lines[i], want[i])
		}
	}
}

func TestClean_Idempotent(t *testing.T) {
	content := "Bash ls\n\nkept one\n  ⎿ res\nkept two\n"
	rules := []Rule{BlankRule(), mustBuiltin(RuleBashPrefix), mustBuiltin(RuleToolResult)}

	first := Clean(content, rules)
	second := Clean(strings.Join(first.Lines, ""), rules)

	if second.RemovedCount != 0 {
		t.Errorf("second pass removed %d lines, want 0", second.RemovedCount)
	}
	if second.OriginalCount != first.FinalCount {
		t.Errorf("second pass saw %d lines, want %d", second.OriginalCount, first.FinalCount)
	}
}

func TestClean_Empty(t *testing.T) {
	result := Clean("", variantARules())

	if result.OriginalCount != 0 || result.RemovedCount != 0 || result.FinalCount != 0 {
		t.Errorf("counts = %d/%d/%d, want 0/0/0",
			result.OriginalCount, result.RemovedCount, result.FinalCount)
	}
	if len(result.Lines) != 0 {
		t.Errorf("Lines = %q, want none", result.Lines)
	}
}

func TestClean_FirstMatchingRuleClaimsLine(t *testing.T) {
	// A whitespace-only line is blank, so the blank rule gets the credit
	// even though trimming leaves "" which bash-prefix would not match anyway.
	// Order matters when rules overlap: "  Bash\n" is not blank, so it falls
	// through to bash-prefix.
	result := Clean("   \n  Bash\n", variantARules())

	if result.RuleCounts[0].Removed != 1 {
		t.Errorf("blank removed %d, want 1", result.RuleCounts[0].Removed)
	}
	if result.RuleCounts[1].Removed != 1 {
		t.Errorf("bash-prefix removed %d, want 1", result.RuleCounts[1].Removed)
	}
}

func TestCleanFile(t *testing.T) {
	tmpDir := t.TempDir()
	inPath := filepath.Join(tmpDir, "summary.md")
	outPath := filepath.Join(tmpDir, "summary_cleaned.md")

	content := "# Session\n\nBash git status\nAll good.\n"
	if err := os.WriteFile(inPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	result, err := CleanFile(context.Background(), inPath, outPath, variantARules())
	if err != nil {
		t.Fatalf("CleanFile() error = %v", err)
	}

	if result.OriginalCount != 4 || result.RemovedCount != 2 || result.FinalCount != 2 {
		t.Errorf("counts = %d/%d/%d, want 4/2/2",
			result.OriginalCount, result.RemovedCount, result.FinalCount)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "# Session\nAll good.\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	// Input untouched
	orig, err := os.ReadFile(inPath)
	if err != nil {
		t.Fatalf("reading input back: %v", err)
	}
	if string(orig) != content {
		t.Errorf("input modified: %q", orig)
	}
}

func TestCleanFile_InPlace(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "summary.md")

	if err := os.WriteFile(path, []byte("keep\n\ndrop me not\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	// Empty output path means in-place
	_, err := CleanFile(context.Background(), path, "", variantARules())
	if err != nil {
		t.Fatalf("CleanFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file back: %v", err)
	}
	if string(got) != "keep\ndrop me not\n" {
		t.Errorf("in-place content = %q", got)
	}
}

func TestCleanFile_EmptyInput(t *testing.T) {
	tmpDir := t.TempDir()
	inPath := filepath.Join(tmpDir, "empty.md")
	outPath := filepath.Join(tmpDir, "empty_cleaned.md")

	if err := os.WriteFile(inPath, nil, 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	result, err := CleanFile(context.Background(), inPath, outPath, variantARules())
	if err != nil {
		t.Fatalf("CleanFile() error = %v", err)
	}
	if result.OriginalCount != 0 || result.RemovedCount != 0 || result.FinalCount != 0 {
		t.Errorf("counts = %d/%d/%d, want 0/0/0",
			result.OriginalCount, result.RemovedCount, result.FinalCount)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("output = %q, want empty", got)
	}
}

func TestCleanFile_MissingInput(t *testing.T) {
	_, err := CleanFile(context.Background(), "/nonexistent/summary.md", "", variantARules())
	if err == nil {
		t.Error("CleanFile() expected error for missing input")
	}
}

func TestCheckFile_DoesNotWrite(t *testing.T) {
	tmpDir := t.TempDir()
	inPath := filepath.Join(tmpDir, "summary.md")

	content := "keep\n\n"
	if err := os.WriteFile(inPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	result, err := CheckFile(context.Background(), inPath, variantARules())
	if err != nil {
		t.Fatalf("CheckFile() error = %v", err)
	}
	if result.RemovedCount != 1 {
		t.Errorf("RemovedCount = %d, want 1", result.RemovedCount)
	}

	got, err := os.ReadFile(inPath)
	if err != nil {
		t.Fatalf("reading input back: %v", err)
	}
	if string(got) != content {
		t.Errorf("CheckFile modified the input: %q", got)
	}
}

func TestCheckFile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CheckFile(ctx, "unused.md", variantARules())
	if err == nil {
		t.Error("CheckFile() expected error for cancelled context")
	}
}
