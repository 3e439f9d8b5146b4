package domain

import (
	"task-manager/internal/repository/database"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// FromDatabase converts a database Task to a domain Task. The status column
// is constrained by the schema, so it is copied without re-validation.
func (m *TaskMapper) FromDatabase(dbTask database.Task) Task {
	return Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		Status:      Status(dbTask.Status),
		CreatedAt:   dbTask.CreatedAt,
	}
}

// FromDatabaseSlice converts database rows to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*database.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		task := m.FromDatabase(*dbTask)
		domainTasks[i] = &task
	}
	return domainTasks
}
