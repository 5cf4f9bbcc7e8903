package config

// Default configuration values.
const (
	DefaultLogLevel   = "info"
	DefaultOutput     = "table"
	DefaultConnection = "default"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "leaprecord.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "leaprecord.yml"

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "LEAPRECORD_"

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log_level":          DefaultLogLevel,
		"verbose":            false,
		"output":             DefaultOutput,
		"default_connection": DefaultConnection,
	}
}
