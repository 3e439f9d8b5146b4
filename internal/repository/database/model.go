package database

import "time"

// Stored status values. The schema's CHECK constraint accepts exactly these.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// ActiveStatuses lists the statuses returned by ListActiveTasks.
var ActiveStatuses = []string{StatusNotStarted, StatusInProgress}

// Task is one row of the tasks table.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
}
