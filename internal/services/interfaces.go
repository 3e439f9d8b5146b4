package services

import (
	"context"

	"task-manager/internal/domain"
)

// TaskService handles the task lifecycle: every method validates its input
// before touching storage.
type TaskService interface {
	AddTask(ctx context.Context, title, description string) (*domain.Task, error)
	ListActiveTasks(ctx context.Context) ([]*domain.Task, error)
	TaskExists(ctx context.Context, id int64) (bool, error)

	// UpdateTaskStatus and DeleteTask succeed without effect when id is absent.
	UpdateTaskStatus(ctx context.Context, id int64, status domain.Status) error
	DeleteTask(ctx context.Context, id int64) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService TaskService
}
