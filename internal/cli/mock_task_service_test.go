package cli

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/services"
)

// mockTaskService implements services.TaskService in memory and records calls
type mockTaskService struct {
	tasks  map[int64]*domain.Task
	nextID int64

	addCalls    int
	existsCalls int
	updateCalls int
	deleteCalls int

	listErr   error
	addErr    error
	existsErr error
	updateErr error
	deleteErr error
}

var _ services.TaskService = (*mockTaskService)(nil)

func newMockTaskService() *mockTaskService {
	return &mockTaskService{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

// seed stores a task directly, bypassing call counters
func (m *mockTaskService) seed(title string, status domain.Status) *domain.Task {
	task := &domain.Task{
		ID:          m.nextID,
		Title:       title,
		Description: title + " description",
		Status:      status,
		CreatedAt:   time.Now(),
	}
	m.tasks[task.ID] = task
	m.nextID++
	return task
}

func (m *mockTaskService) AddTask(ctx context.Context, title, description string) (*domain.Task, error) {
	m.addCalls++
	if m.addErr != nil {
		return nil, m.addErr
	}
	task := &domain.Task{
		ID:          m.nextID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      domain.StatusNotStarted,
		CreatedAt:   time.Now(),
	}
	m.tasks[task.ID] = task
	m.nextID++
	return task, nil
}

func (m *mockTaskService) ListActiveTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.sorted(func(t *domain.Task) bool { return t.Status != domain.StatusDone }), nil
}

func (m *mockTaskService) TaskExists(ctx context.Context, id int64) (bool, error) {
	m.existsCalls++
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, exists := m.tasks[id]
	return exists, nil
}

func (m *mockTaskService) UpdateTaskStatus(ctx context.Context, id int64, status domain.Status) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	if task, exists := m.tasks[id]; exists {
		task.Status = status
	}
	return nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskService) sorted(keep func(*domain.Task) bool) []*domain.Task {
	result := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if keep(task) {
			result = append(result, task)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// newTestApp builds an app with the default configuration
func newTestApp(service services.TaskService, in io.Reader, out io.Writer) *App {
	return NewApp(service, config.NewConfig(), in, out)
}

// runSession feeds script to a fresh app and returns everything it printed
func runSession(t *testing.T, service services.TaskService, script string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newTestApp(service, strings.NewReader(script), &out)
	err := app.Run(context.Background())
	return out.String(), err
}
