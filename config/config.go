// Package config handles configuration loading from files and environment.
package config

// Config holds all slnmap configuration settings.
// Config is merged from multiple sources: user config, current directory,
// environment variables, and command-line flags.
type Config struct {
	// Global settings
	Verbose bool   `koanf:"verbose"`
	Quiet   bool   `koanf:"quiet"`
	Color   string `koanf:"color"` // auto, always, never

	Scan   ScanConfig   `koanf:"scan"`
	Cache  CacheConfig  `koanf:"cache"`
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
	Watch  WatchConfig  `koanf:"watch"`
}

// ScanConfig holds scan behavior settings.
type ScanConfig struct {
	// SkipDirs lists extra directory names never descended into,
	// in addition to the built-in set (bin, obj, .git, ...).
	SkipDirs []string `koanf:"skip_dirs"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"` // empty = default user cache location
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warning, error
	Format string `koanf:"format"` // text, json
	Output string `koanf:"output"` // stderr, stdout, or a file path
}

// OutputConfig holds JSON output settings.
type OutputConfig struct {
	Indent int `koanf:"indent"` // spaces per indent level
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	DebounceMs int `koanf:"debounce_ms"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Verbose: false,
		Quiet:   false,
		Color:   "auto",

		Scan: ScanConfig{
			SkipDirs: nil,
		},

		Cache: CacheConfig{
			Enabled: true,
			Path:    "",
		},

		Log: LogConfig{
			Level:  "warning",
			Format: "text",
			Output: "stderr",
		},

		Output: OutputConfig{
			Indent: 2,
		},

		Watch: WatchConfig{
			DebounceMs: 500,
		},
	}
}
