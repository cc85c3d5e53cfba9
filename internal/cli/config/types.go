// Package config provides configuration management for the cxxstd CLI.
//
// Configuration is layered: built-in defaults, then an optional
// cxxstd.yaml, then CXXSTD_* environment variables, then command-line
// flags, each layer overriding the previous one.
package config

// Config holds all CLI configuration options.
type Config struct {
	Floor         int            `koanf:"floor"`           // acceptance threshold, e.g. 20
	Format        string         `koanf:"format"`          // auto, text, json, yaml
	Disabled      []string       `koanf:"disabled"`        // feature ids whose matchers are off
	FailOnUnknown bool           `koanf:"fail_on_unknown"` // error on unknown feature ids in config
	Workers       int            `koanf:"workers"`         // parallel file classifications, 0 = GOMAXPROCS
	Verbose       bool           `koanf:"verbose"`
	Watch         WatchConfig    `koanf:"watch"`
	Features      map[string]any `koanf:"features"` // reserved for per-feature options
}

// WatchConfig holds settings for the --watch re-classification loop.
type WatchConfig struct {
	DebounceMillis int `koanf:"debounce_ms"`
}

// Default configuration values.
const (
	// DefaultFloor of 0 means "use the catalog floor", the lowest
	// cataloged gate.
	DefaultFloor         = 0
	DefaultFormat        = "auto" // Auto-detect: TTY=text, non-TTY=json
	DefaultWatchDebounce = 250
	DefaultWorkers       = 0
)
