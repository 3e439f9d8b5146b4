package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/repository/database"
	"task-manager/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          database.Repository
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a TaskService that applies the validation limits
// from cfg.
func NewTaskService(repo database.Repository, cfg *config.Config) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidator(cfg),
	}
}

// NewServiceContainer wires every service around one repository.
func NewServiceContainer(repo database.Repository, cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		TaskService: NewTaskService(repo, cfg),
	}
}

// AddTask stores a new task in the not-started state. Title and description
// are trimmed; duplicate titles are allowed.
func (t *taskServiceImpl) AddTask(ctx context.Context, title, description string) (*domain.Task, error) {
	cleanTitle, cleanDescription, err := t.taskValidator.CleanTask(title, description)
	if err != nil {
		return nil, err
	}

	dbTask := &database.Task{
		Title:       cleanTitle,
		Description: cleanDescription,
	}
	if err := t.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	log.Debug().Int64("task_id", dbTask.ID).Msg("Task created")

	domainTask := t.mapper.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListActiveTasks returns not-started and in-progress tasks by ascending id.
func (t *taskServiceImpl) ListActiveTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListActiveTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.FromDatabaseSlice(dbTasks), nil
}

// TaskExists reports whether a row with id exists, whatever its status.
func (t *taskServiceImpl) TaskExists(ctx context.Context, id int64) (bool, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return false, err
	}
	return t.repo.TaskExists(ctx, id)
}

// UpdateTaskStatus moves a task to status. Any transition is allowed.
func (t *taskServiceImpl) UpdateTaskStatus(ctx context.Context, id int64, status domain.Status) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}
	validStatus, err := t.taskValidator.ValidateStatus(string(status))
	if err != nil {
		return err
	}

	return t.repo.UpdateTaskStatus(ctx, id, string(validStatus))
}

// DeleteTask removes a task permanently.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}
	return t.repo.DeleteTask(ctx, id)
}
