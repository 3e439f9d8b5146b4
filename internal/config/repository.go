package config

import (
	"context"
	"fmt"

	"task-manager/internal/repository/database"
)

const dbDirPermissions = 0o755

// CreateRepository bootstraps the configured database and opens the single
// connection the application uses.
func CreateRepository(ctx context.Context, cfg *Config) (database.Repository, error) {
	dialect, err := cfg.Dialect()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	settings := database.Settings{
		Dialect:      dialect,
		QueryTimeout: cfg.GetQueryTimeout(),
	}

	switch dialect {
	case database.Postgres:
		params := cfg.PostgresParams()
		if err := database.EnsurePostgresDatabase(ctx, params); err != nil {
			return nil, err
		}
		settings.DSN = database.PostgresDSN(params)
	default:
		dbPath := cfg.GetDatabasePath()
		if err := database.EnsureSQLiteDir(dbPath, dbDirPermissions); err != nil {
			return nil, err
		}
		settings.DSN = database.SQLiteDSN(dbPath)
	}

	repo, err := database.Open(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}
