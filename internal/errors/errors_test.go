package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without cause",
			err:      &Error{Kind: KindInvalidInput, Message: "choose 1 or 2"},
			expected: "invalid_input: choose 1 or 2",
		},
		{
			name:     "with cause",
			err:      &Error{Kind: KindDatabase, Message: "database operation failed: insert task", Err: errors.New("disk full")},
			expected: "database: database operation failed: insert task: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("list: %w", NewDatabaseError("query active tasks", cause))

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the cause through the chain")
	}
}

func TestError_With(t *testing.T) {
	err := &Error{Kind: KindDatabase}
	if got := err.With("task_id", int64(3)); got != err {
		t.Errorf("With should return the receiver")
	}
	if err.Fields["task_id"] != int64(3) {
		t.Errorf("Fields[task_id] = %v, want 3", err.Fields["task_id"])
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("menu choice", "9", "choose a number from 1-5")

	if err.Kind != KindInvalidInput {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
	}
	if err.Message != "invalid input for menu choice: choose a number from 1-5" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Fields["field"] != "menu choice" || err.Fields["value"] != "9" {
		t.Errorf("Fields = %v, want field and value", err.Fields)
	}
}

func TestNewTaskNotFoundError(t *testing.T) {
	err := NewTaskNotFoundError(42)

	if err.Kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
	}
	if err.Message != "No task with ID 42." {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Fields["task_id"] != int64(42) {
		t.Errorf("Fields[task_id] = %v, want 42", err.Fields["task_id"])
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("no such table: tasks")
	err := NewDatabaseError("insert task", cause)

	if err.Kind != KindDatabase {
		t.Errorf("Kind = %v, want %v", err.Kind, KindDatabase)
	}
	if err.Message != "database operation failed: insert task" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Err != cause {
		t.Errorf("Err = %v, want %v", err.Err, cause)
	}
	if err.Fields["operation"] != "insert task" {
		t.Errorf("Fields[operation] = %v", err.Fields["operation"])
	}
}

func TestNewDatabaseError_Deadline(t *testing.T) {
	cause := fmt.Errorf("query: %w", context.DeadlineExceeded)
	err := NewDatabaseError("query active tasks", cause)

	if err.Kind != KindTimeout {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTimeout)
	}
	if err.Message != "operation timed out: query active tasks" {
		t.Errorf("Message = %q", err.Message)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("timeout should still unwrap to the deadline")
	}
}

func TestNewConnectionError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewConnectionError("localhost:5432", cause)

	if err.Kind != KindConnection {
		t.Errorf("Kind = %v, want %v", err.Kind, KindConnection)
	}
	if err.Message != "could not connect to localhost:5432" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Fields["target"] != "localhost:5432" {
		t.Errorf("Fields[target] = %v", err.Fields["target"])
	}
}
