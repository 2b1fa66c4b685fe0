package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level folio.yaml configuration.
type Config struct {
	Organization OrganizationConfig `yaml:"organization"`
	Statement    StatementConfig    `yaml:"statement"`
	Git          GitConfig          `yaml:"git"`
}

// OrganizationConfig identifies the reporting organization.
type OrganizationConfig struct {
	Name string `yaml:"name"`
}

// StatementConfig controls statement generation.
type StatementConfig struct {
	RulesFile     string `yaml:"rules_file"`     // relative to the project root
	DefaultFormat string `yaml:"default_format"` // trial balance format when none given
}

// GitConfig controls git versioning of rule edits.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a folio.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(organizationName string) *Config {
	return &Config{
		Organization: OrganizationConfig{
			Name: organizationName,
		},
		Statement: StatementConfig{
			RulesFile:     "rules/rules.yaml",
			DefaultFormat: "standard",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Folio",
			AuthorEmail: "folio@folio.dev",
		},
	}
}
