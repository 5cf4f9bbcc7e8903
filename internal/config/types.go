// Package config loads leaprecord configuration from leaprecord.yaml,
// LEAPRECORD_* environment variables and command-line flags.
package config

// ConnectionConfig is one named connection profile.
type ConnectionConfig struct {
	Driver      string `koanf:"driver" yaml:"driver"`                      // sqlite, pgx, duckdb
	DSN         string `koanf:"dsn" yaml:"dsn"`                            // ${VAR} is expanded from the environment
	Placeholder string `koanf:"placeholder" yaml:"placeholder,omitempty"` // named, question, dollar
}

// Config holds all configuration options.
type Config struct {
	LogLevel          string                      `koanf:"log_level" yaml:"log_level"`
	Verbose           bool                        `koanf:"verbose" yaml:"verbose"`
	Output            string                      `koanf:"output" yaml:"output"`
	DefaultConnection string                      `koanf:"default_connection" yaml:"default_connection"`
	Connections       map[string]ConnectionConfig `koanf:"connections" yaml:"connections"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-" yaml:"-"`
}
