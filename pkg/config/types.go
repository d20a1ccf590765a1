package config

// Config is the root sumclean configuration.
type Config struct {
	// Input is the file to clean.
	Input string `yaml:"input"`

	// Output is where the cleaned content is written.
	Output string `yaml:"output"`

	// Rules is the ordered list of rule names to apply. Names refer to
	// built-in rules or to entries in CustomRules.
	Rules []string `yaml:"rules"`

	// CustomRules declares additional prefix rules usable in Rules.
	CustomRules []CustomRule `yaml:"custom_rules,omitempty"`
}

// CustomRule declares a prefix rule: lines whose content starts with
// Prefix after leading whitespace are removed.
type CustomRule struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
}
