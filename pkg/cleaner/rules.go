package cleaner

import (
	"strings"
	"unicode"
)

// Rule decides whether a line should be removed.
type Rule struct {
	// Name identifies the rule in reports and configuration.
	Name string

	// Match returns true if the line should be removed.
	Match func(line string) bool
}

// Built-in rule names.
const (
	RuleBlank      = "blank"
	RuleBashPrefix = "bash-prefix"
	RuleToolResult = "tool-result"
)

// Marker tokens matched by the built-in prefix rules.
const (
	BashToken       = "Bash"
	ToolResultGlyph = "⎿"
)

// BlankRule removes empty and whitespace-only lines.
func BlankRule() Rule {
	return Rule{
		Name: RuleBlank,
		Match: func(line string) bool {
			return strings.TrimSpace(line) == ""
		},
	}
}

// PrefixRule removes lines whose content starts with the given literal
// prefix once leading whitespace is stripped. Matching is case-sensitive;
// whitespace uses the broad Unicode definition.
func PrefixRule(name, prefix string) Rule {
	return Rule{
		Name: name,
		Match: func(line string) bool {
			return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), prefix)
		},
	}
}

// BuiltinRule returns the built-in rule with the given name.
func BuiltinRule(name string) (Rule, bool) {
	switch name {
	case RuleBlank:
		return BlankRule(), true
	case RuleBashPrefix:
		return PrefixRule(RuleBashPrefix, BashToken), true
	case RuleToolResult:
		return PrefixRule(RuleToolResult, ToolResultGlyph), true
	}
	return Rule{}, false
}

// BuiltinRuleNames lists the built-in rule names.
func BuiltinRuleNames() []string {
	return []string{RuleBlank, RuleBashPrefix, RuleToolResult}
}
