package errors

import (
	"context"
	"errors"
	"fmt"
)

// Error is the failure passed from the database, domain and menu layers up
// to the error handler. Fields holds loggable details such as task_id or the
// database operation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	Fields  map[string]interface{}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// With records a loggable field and returns e.
func (e *Error) With(key string, value interface{}) *Error {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// NewInvalidInputError rejects something typed at a prompt; the message is
// shown as is.
func NewInvalidInputError(field, value, reason string) *Error {
	e := &Error{
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
	}
	return e.With("field", field).With("value", value)
}

// NewTaskNotFoundError reports an id with no row behind it.
func NewTaskNotFoundError(id int64) *Error {
	e := &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("No task with ID %d.", id),
	}
	return e.With("task_id", id)
}

// NewDatabaseError wraps a failed statement. A context deadline in the
// cause makes it a timeout.
func NewDatabaseError(operation string, cause error) *Error {
	e := &Error{
		Kind:    KindDatabase,
		Message: "database operation failed: " + operation,
		Err:     cause,
	}
	if errors.Is(cause, context.DeadlineExceeded) {
		e.Kind = KindTimeout
		e.Message = "operation timed out: " + operation
	}
	return e.With("operation", operation)
}

// NewConnectionError reports a failure to reach the database server.
func NewConnectionError(target string, cause error) *Error {
	e := &Error{
		Kind:    KindConnection,
		Message: "could not connect to " + target,
		Err:     cause,
	}
	return e.With("target", target)
}
