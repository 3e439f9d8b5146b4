package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"task-manager/internal/repository/database"
)

const (
	defaultDBName    = "tasks"
	defaultDBDirName = ".tasks"

	// The postgres schema stores titles in VARCHAR(255); the sqlite column
	// is TEXT and has no limit of its own.
	maxTitleLength = 255
)

// Config holds all configuration options for the task manager
type Config struct {
	Database   DatabaseConfig
	Validation ValidationConfig
	Log        LogConfig
}

// DatabaseConfig holds database-related configuration. Driver selects sqlite
// (Path/Dir) or postgres (Host through SSLMode).
type DatabaseConfig struct {
	Driver         string        `env:"DB_DRIVER" env-default:"sqlite"`
	Host           string        `env:"DB_HOST" env-default:"localhost"`
	Port           int           `env:"DB_PORT" env-default:"5432"`
	User           string        `env:"DB_USER"`
	Password       string        `env:"DB_PASSWORD"`
	Name           string        `env:"DB_NAME" env-default:"tasks"`
	SSLMode        string        `env:"DB_SSLMODE" env-default:"disable"`
	Path           string        `env:"DB_PATH"`
	Dir            string        `env:"DB_DIR"`
	QueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT" env-default:"10s"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"10s"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength int `env:"TASKS_TITLE_MAX_LENGTH" env-default:"255"`
}

// LogConfig controls the zerolog outputs.
type LogConfig struct {
	Level      string `env:"LOG_LEVEL" env-default:"error"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" env-default:"10"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"3"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" env-default:"30"`
	Compress   bool   `env:"LOG_COMPRESS" env-default:"true"`
}

// NewConfig returns the defaults, identical to what Load produces from an
// empty environment.
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:         string(database.SQLite),
			Host:           "localhost",
			Port:           5432,
			Name:           defaultDBName,
			SSLMode:        "disable",
			QueryTimeout:   10 * time.Second,
			ConnectTimeout: 10 * time.Second,
		},
		Validation: ValidationConfig{
			TitleMaxLength: maxTitleLength,
		},
		Log: LogConfig{
			Level:      "error",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// Dialect returns the parsed DB_DRIVER value.
func (c *Config) Dialect() (database.Dialect, error) {
	return database.ParseDialect(c.Database.Driver)
}

// GetDatabasePath returns the SQLite file location. DB_PATH wins; otherwise
// the file is <DB_DIR>/<DB_NAME>.db with DB_DIR defaulting to ~/.tasks.
func (c *Config) GetDatabasePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}

	dir := c.Database.Dir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		dir = filepath.Join(homeDir, defaultDBDirName)
	}

	name := c.Database.Name
	if name == "" {
		name = defaultDBName
	}
	return filepath.Join(dir, name+".db")
}

// PostgresParams maps the configuration onto connection parameters.
func (c *Config) PostgresParams() database.PostgresParams {
	return database.PostgresParams{
		Host:           c.Database.Host,
		Port:           c.Database.Port,
		User:           c.Database.User,
		Password:       c.Database.Password,
		Database:       c.Database.Name,
		SSLMode:        c.Database.SSLMode,
		ConnectTimeout: c.Database.ConnectTimeout,
	}
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// Validate validates the configuration and returns any errors. Connection
// credentials are not checked here; a bad value shows up when connecting.
func (c *Config) Validate() error {
	dialect, err := c.Dialect()
	if err != nil {
		return &ConfigError{Field: "database.driver", Message: err.Error()}
	}
	if c.Database.Name == "" {
		return &ConfigError{Field: "database.name", Message: "database name cannot be empty"}
	}
	if dialect == database.Postgres && (c.Database.Port < 1 || c.Database.Port > 65535) {
		return &ConfigError{Field: "database.port", Message: "port must be between 1 and 65535"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.ConnectTimeout <= 0 {
		return &ConfigError{Field: "database.connect_timeout", Message: "connect timeout must be positive"}
	}

	if c.Validation.TitleMaxLength < 1 || c.Validation.TitleMaxLength > maxTitleLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title max length must be between 1 and 255"}
	}

	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return &ConfigError{Field: "log.level", Message: "log level must be one of trace, debug, info, warn, error, disabled"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
