package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository/database/migrations"
)

// DefaultQueryTimeout bounds each statement when Settings leaves it unset.
const DefaultQueryTimeout = 10 * time.Second

// Repository defines the data-access operations on the tasks table. Every
// method is one statement in its own auto-commit.
type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
	ListActiveTasks(ctx context.Context) ([]*Task, error)
	TaskExists(ctx context.Context, id int64) (bool, error)
	UpdateTaskStatus(ctx context.Context, id int64, status string) error
	DeleteTask(ctx context.Context, id int64) error

	Close() error
}

// Settings describes how to open the repository.
type Settings struct {
	Dialect      Dialect
	DSN          string
	QueryTimeout time.Duration
}

// SQLRepository implements Repository over a single database/sql connection.
type SQLRepository struct {
	db           *sql.DB
	dialect      Dialect
	queryTimeout time.Duration
}

// Open connects, verifies the connection and applies pending migrations.
func Open(ctx context.Context, settings Settings) (*SQLRepository, error) {
	if settings.Dialect == "" {
		settings.Dialect = SQLite
	}
	if settings.QueryTimeout <= 0 {
		settings.QueryTimeout = DefaultQueryTimeout
	}

	db, err := sql.Open(settings.Dialect.DriverName(), settings.DSN)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// One connection for the whole process.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewConnectionError(string(settings.Dialect)+" database", err)
	}

	if err := migrations.RunMigrations(ctx, db, string(settings.Dialect)); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	log.Debug().Str("dialect", string(settings.Dialect)).Msg("Database connection established")

	return &SQLRepository{
		db:           db,
		dialect:      settings.Dialect,
		queryTimeout: settings.QueryTimeout,
	}, nil
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

func (r *SQLRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.queryTimeout)
}

// CreateTask inserts a row with the default status and fills in the
// server-assigned id, status and creation time.
func (r *SQLRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.dialect.Rebind(`
	INSERT INTO tasks (title, description)
	VALUES (?, ?)
	RETURNING id, status, created_at`)

	var createdAt interface{}
	err := r.db.QueryRowContext(ctx, query, task.Title, task.Description).Scan(&task.ID, &task.Status, &createdAt)
	if err != nil {
		return HandleDatabaseError("insert task", err)
	}

	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return HandleDatabaseError("read task creation time", err)
	}
	return nil
}

// ListActiveTasks retrieves tasks that are not done, oldest id first.
func (r *SQLRepository) ListActiveTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.dialect.Rebind(`
	SELECT id, title, description, status, created_at
	FROM tasks
	WHERE status IN (` + Placeholders(len(ActiveStatuses)) + `)
	ORDER BY id ASC`)

	args := make([]interface{}, len(ActiveStatuses))
	for i, status := range ActiveStatuses {
		args[i] = status
	}

	return QueryMultiple(ctx, r.db, query, ScanTasks, "active tasks", args...)
}

// TaskExists checks the primary key regardless of status.
func (r *SQLRepository) TaskExists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.dialect.Rebind(`SELECT 1 FROM tasks WHERE id = ?`)
	exists, err := QueryExists(ctx, r.db, "check task exists", query, id)
	return exists, withTaskID(err, id)
}

// UpdateTaskStatus sets the status of a task. An unknown id is a no-op.
func (r *SQLRepository) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.dialect.Rebind(`UPDATE tasks SET status = ? WHERE id = ?`)
	rows, err := ExecuteWithRowsAffected(ctx, r.db, "update task status", query, status, id)
	if err != nil {
		return withTaskID(err, id)
	}
	if rows == 0 {
		logging.Debugf("Status update matched no task with id %d", id)
	}
	return nil
}

// DeleteTask deletes a task by ID. An unknown id is a no-op.
func (r *SQLRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.dialect.Rebind(`DELETE FROM tasks WHERE id = ?`)
	rows, err := ExecuteWithRowsAffected(ctx, r.db, "delete task", query, id)
	if err != nil {
		return withTaskID(err, id)
	}
	if rows == 0 {
		logging.Debugf("Delete matched no task with id %d", id)
	}
	return nil
}

// withTaskID tags a failed statement with the task it was about.
func withTaskID(err error, id int64) error {
	if e, ok := errors.As(err); ok {
		e.With("task_id", id)
	}
	return err
}
