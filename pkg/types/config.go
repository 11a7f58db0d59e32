package types

// OutputFormat selects how search results are rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// SearchConfig holds settings for the search engine and result presenter.
type SearchConfig struct {
	// Distinct switches keyword matching to one match per query token and
	// keeps an ID match from appearing twice in a combined result.
	Distinct bool `json:"distinct" yaml:"distinct"`

	// Format selects text, json, or yaml output (default text).
	Format OutputFormat `json:"format" yaml:"format"`
}

// ShellConfig holds settings for the interactive shell.
type ShellConfig struct {
	// MaxAttempts is the number of invalid entries allowed per field before
	// the current operation is abandoned (default 3).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`
}

// Config groups all settings read from flags, environment, and config file.
type Config struct {
	// SeedFile is an optional YAML catalog loaded at startup.
	SeedFile string `json:"seed" yaml:"seed"`

	// LogLevel is one of debug, info, warn, error (default warn).
	LogLevel string `json:"log_level" yaml:"log_level"`

	Search SearchConfig `json:"search" yaml:"search"`
	Shell  ShellConfig  `json:"shell" yaml:"shell"`
}
