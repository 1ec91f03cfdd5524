package log

// Config is the configuration struct for the log package.
//
// Can be deserialized from YAML or TOML.
type Config struct {
	// Level is the log level you want to set the library to.
	Level Level `yaml:"level" toml:"level" env:"PQRAND_LOG_LEVEL"`

	// JSON selects the json encoding over the console one.
	JSON bool `yaml:"json" toml:"json" env:"PQRAND_LOG_JSON"`
}

// InitFromConfig initializes the log package using the given Config.
//
// An empty Level defaults to InfoLevel.
func InitFromConfig(cfg Config) {
	if cfg.Level == "" {
		cfg.Level = InfoLevel
	}
	if cfg.JSON {
		InitLoggerJSON(cfg.Level)
		return
	}
	InitLogger(cfg.Level)
}
