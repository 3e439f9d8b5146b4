package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().WithEnvFile("").Load()
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoader_Load_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "pg.example.com")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "tasks")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "todo")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := NewLoader().WithEnvFile("").Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "pg.example.com", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "tasks", cfg.Database.User)
	assert.Equal(t, "hunter2", cfg.Database.Password)
	assert.Equal(t, "todo", cfg.Database.Name)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")

	_, err := NewLoader().WithEnvFile("").Load()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "database.driver", cfgErr.Field)
}

func TestLoader_Load_EnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "DB_NAME=from_file\nDB_USER=file_user\nLOG_LEVEL=info\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// Variables already in the environment are not overwritten by the file
	t.Setenv("DB_USER", "env_user")

	cfg, err := NewLoader().WithEnvFile(envFile).Load()
	require.NoError(t, err)

	assert.Equal(t, "from_file", cfg.Database.Name)
	assert.Equal(t, "env_user", cfg.Database.User)
	assert.Equal(t, "info", cfg.Log.Level)

	// godotenv sets process variables; drop them for the next tests
	clearEnv(t)
}

func TestLoader_Load_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("explicit file must exist", func(t *testing.T) {
		_, err := NewLoader().WithEnvFile(missing).Load()
		require.Error(t, err)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "env_file", cfgErr.Field)
	})

	t.Run("default file is optional", func(t *testing.T) {
		loader := NewLoader()
		loader.envFile = missing

		_, err := loader.Load()
		assert.NoError(t, err)
	})
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DB_PATH", "/from/env.db")

	driver := "sqlite3"
	dbPath := "/from/flag.db"
	level := "debug"
	logFile := "/tmp/tasks.log"

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{
		DBDriver: &driver,
		DBPath:   &dbPath,
		LogLevel: &level,
		LogFile:  &logFile,
	})
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "/from/flag.db", cfg.GetDatabasePath())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/tasks.log", cfg.Log.File)
}

func TestLoader_LoadWithOverrides_Partial(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	dbPath := "/tmp/only-path.db"
	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{DBPath: &dbPath})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, dbPath, cfg.Database.Path)
}

func TestLoader_LoadWithOverrides_InvalidOverride(t *testing.T) {
	clearEnv(t)

	level := "loud"
	_, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{LogLevel: &level})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoader_LoadWithOverrides_FlagReplacesInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("DB_DRIVER", "mysql")

	_, err := NewLoader().WithEnvFile("").Load()
	require.Error(t, err, "without overrides the bad environment is reported")

	level := "debug"
	driver := "sqlite"
	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{
		LogLevel: &level,
		DBDriver: &driver,
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoader_LoadWithOverrides_Nil(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}
