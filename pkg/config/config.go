// Package config loads and validates sumclean configuration files.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sumclean/pkg/cleaner"
)

// Load reads and validates a configuration file. An empty path yields the
// defaults. Environment overrides are applied in both cases.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Input == "" {
		return errors.New("input: a file to clean is required")
	}
	if cfg.Output == "" {
		return errors.New("output: an output path is required")
	}
	if len(cfg.Rules) == 0 {
		return errors.New("rules: at least one rule is required")
	}

	custom := make(map[string]bool, len(cfg.CustomRules))
	for i := range cfg.CustomRules {
		if err := validateCustomRule(&cfg.CustomRules[i], custom); err != nil {
			return fmt.Errorf("custom_rules[%d] (%s): %w", i, cfg.CustomRules[i].Name, err)
		}
		custom[cfg.CustomRules[i].Name] = true
	}

	seen := make(map[string]bool, len(cfg.Rules))
	for i, name := range cfg.Rules {
		if _, ok := cleaner.BuiltinRule(name); !ok && !custom[name] {
			return fmt.Errorf("rules[%d]: unknown rule %q (built-ins: %s)",
				i, name, strings.Join(cleaner.BuiltinRuleNames(), ", "))
		}
		if seen[name] {
			return fmt.Errorf("rules[%d]: rule %q listed twice", i, name)
		}
		seen[name] = true
	}

	return nil
}

func validateCustomRule(rule *CustomRule, existing map[string]bool) error {
	if rule.Name == "" {
		return errors.New("name is required")
	}
	if rule.Prefix == "" {
		return errors.New("prefix is required")
	}
	if _, ok := cleaner.BuiltinRule(rule.Name); ok {
		return fmt.Errorf("name %q shadows a built-in rule", rule.Name)
	}
	if existing[rule.Name] {
		return errors.New("duplicate rule name")
	}
	return nil
}

// ResolveRules compiles the configured rule names into executable rules,
// in config order. Must be called on a validated config.
func (c *Config) ResolveRules() ([]cleaner.Rule, error) {
	custom := make(map[string]cleaner.Rule, len(c.CustomRules))
	for _, cr := range c.CustomRules {
		custom[cr.Name] = cleaner.PrefixRule(cr.Name, cr.Prefix)
	}

	rules := make([]cleaner.Rule, 0, len(c.Rules))
	for _, name := range c.Rules {
		if r, ok := cleaner.BuiltinRule(name); ok {
			rules = append(rules, r)
			continue
		}
		r, ok := custom[name]
		if !ok {
			return nil, fmt.Errorf("unknown rule %q", name)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
