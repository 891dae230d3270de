// Package domain defines core entities and value objects for ollash.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures: configuration, the query
// lifecycle, the safety gate, and the error taxonomy.
package domain

// Default configuration values, used when neither the environment nor the
// config file provides an override.
const (
	DefaultEndpoint       = "http://localhost:11434/api/generate"
	DefaultModel          = "gemma3:1b"
	DefaultTimeoutSeconds = 60
)

// Config mirrors ~/.ollash/config.yaml after environment overrides have been
// applied. It is loaded once per invocation and passed around immutably.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Endpoint            string            `yaml:"endpoint"`
	DefaultModel        string            `yaml:"default_model"`
	TimeoutSeconds      int               `yaml:"timeout"`
	Execution           ExecutionSettings `yaml:"execution"`
	Security            SecuritySettings  `yaml:"security"`
	History             HistorySettings   `yaml:"history"`
}

// ExecutionSettings controls how commands run.
type ExecutionSettings struct {
	Shell string `yaml:"shell"`
}

// SecuritySettings defines safety-gate behavior.
type SecuritySettings struct {
	RulesFile string `yaml:"rules_file"`
}

// HistorySettings configures the invocation history store.
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
	Path    string `yaml:"path"`
}
