package config

import (
	"errors"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Loader handles loading configuration from multiple sources
type Loader struct {
	envFile         string
	envFileRequired bool
}

// NewLoader creates a loader that reads ./.env if it exists.
func NewLoader() *Loader {
	return &Loader{envFile: DefaultEnvFile}
}

// WithEnvFile makes the loader read path instead; the file must exist.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	l.envFileRequired = path != ""
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Values from the .env file (existing variables are not overwritten)
// 2. Environment variables, with defaults for anything unset
// 3. Validation
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides loads configuration and applies command line overrides.
// Validation runs once, after the overrides, so a flag can replace a bad
// environment value.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	cfg, err := l.read()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(cfg, overrides)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// read collects the env file and environment into a Config without
// validating it.
func (l *Loader) read() (*Config, error) {
	if err := l.loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, &ConfigError{Field: "environment", Message: err.Error()}
	}
	return cfg, nil
}

func (l *Loader) loadEnvFile() error {
	if l.envFile == "" {
		return nil
	}
	err := godotenv.Load(l.envFile)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !l.envFileRequired {
		return nil
	}
	return &ConfigError{Field: "env_file", Message: err.Error()}
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DBDriver *string
	DBPath   *string
	LogLevel *string
	LogFile  *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(cfg *Config, overrides *ConfigOverrides) {
	if overrides.DBDriver != nil {
		cfg.Database.Driver = *overrides.DBDriver
	}
	if overrides.DBPath != nil {
		cfg.Database.Path = *overrides.DBPath
	}
	if overrides.LogLevel != nil {
		cfg.Log.Level = *overrides.LogLevel
	}
	if overrides.LogFile != nil {
		cfg.Log.File = *overrides.LogFile
	}
}
