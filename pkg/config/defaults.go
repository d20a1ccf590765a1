package config

import (
	"os"

	"sumclean/pkg/cleaner"
)

// Default file names, kept from the original workflow.
const (
	DefaultInput  = "summary.md"
	DefaultOutput = "summary_cleaned.md"
)

// Environment variable names.
const (
	EnvInput  = "SUMCLEAN_INPUT"
	EnvOutput = "SUMCLEAN_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Rules:  []string{cleaner.RuleBlank, cleaner.RuleBashPrefix},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if input := os.Getenv(EnvInput); input != "" {
		c.Input = input
	}
	if output := os.Getenv(EnvOutput); output != "" {
		c.Output = output
	}
}
