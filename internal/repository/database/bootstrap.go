package database

import (
	"context"
	"database/sql"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"task-manager/internal/errors"
)

const memoryDSN = ":memory:"

// PostgresParams holds the pieces of a PostgreSQL connection URL.
type PostgresParams struct {
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SSLMode        string
	ConnectTimeout time.Duration
}

// SQLiteDSN returns the modernc DSN for a database file.
func SQLiteDSN(path string) string {
	if path == memoryDSN {
		return path
	}
	return path + "?_pragma=busy_timeout(5000)"
}

// PostgresDSN builds a postgres:// URL with escaped credentials.
func PostgresDSN(p PostgresParams) string {
	query := url.Values{}
	if p.SSLMode != "" {
		query.Set("sslmode", p.SSLMode)
	}
	if p.ConnectTimeout > 0 {
		secs := int(p.ConnectTimeout / time.Second)
		if secs < 1 {
			secs = 1
		}
		query.Set("connect_timeout", strconv.Itoa(secs))
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     "/" + p.Database,
		RawQuery: query.Encode(),
	}
	if p.User != "" {
		u.User = url.UserPassword(p.User, p.Password)
	}
	return u.String()
}

// EnsureSQLiteDir creates the directory that will hold the database file.
func EnsureSQLiteDir(path string, perm os.FileMode) error {
	if path == "" || path == memoryDSN {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		return errors.NewDatabaseError("create database directory", err)
	}
	return nil
}

// EnsurePostgresDatabase creates p.Database if it does not exist yet. It
// connects through the "postgres" maintenance database to do so.
func EnsurePostgresDatabase(ctx context.Context, p PostgresParams) error {
	admin := p
	admin.Database = "postgres"

	db, err := sql.Open(Postgres.DriverName(), PostgresDSN(admin))
	if err != nil {
		return errors.NewDatabaseError("open maintenance database", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.NewConnectionError(net.JoinHostPort(p.Host, strconv.Itoa(p.Port)), err)
	}

	exists, err := QueryExists(ctx, db, "check database exists",
		`SELECT 1 FROM pg_database WHERE datname = $1`, p.Database)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	// CREATE DATABASE takes no bind parameters; the name is quoted instead.
	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+pgx.Identifier{p.Database}.Sanitize()); err != nil {
		return errors.NewDatabaseError("create database", err)
	}
	log.Info().Str("database", p.Database).Msg("Created database")
	return nil
}
