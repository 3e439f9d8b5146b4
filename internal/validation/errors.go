package validation

import (
	"fmt"
	"strings"
)

// Problem names what is wrong with one field.
type Problem string

const (
	ProblemMissing Problem = "missing"
	ProblemFormat  Problem = "format"
	ProblemTooLong Problem = "too_long"
	ProblemValue   Problem = "value"
)

// FieldError is one problem with one piece of typed input. Message is
// written for the prompt.
type FieldError struct {
	Field   string
	Problem Problem
	Message string
}

// ValidationError collects every problem found in one input so the menu can
// report them together.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// NewInputTooLongError rejects a typed line longer than limit bytes.
func NewInputTooLongError(limit int) *ValidationError {
	ve := NewValidationError()
	ve.add("input", ProblemTooLong, fmt.Sprintf("input lines are limited to %d KiB", limit/1024))
	return ve
}

func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors returns true if any problem was recorded
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// UserMessage returns one line per problem for display at the prompt.
func (ve *ValidationError) UserMessage() string {
	if len(ve.Errors) == 0 {
		return "Input validation failed"
	}
	lines := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		lines[i] = fe.Message
	}
	return strings.Join(lines, "\n")
}

func (ve *ValidationError) add(field string, problem Problem, message string) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Problem: problem, Message: message})
}

func (ve *ValidationError) missing(field string) {
	ve.add(field, ProblemMissing, field+" is required")
}

func (ve *ValidationError) badFormat(field, expected string) {
	ve.add(field, ProblemFormat, fmt.Sprintf("%s must be %s", field, expected))
}

func (ve *ValidationError) tooLong(field string, max int) {
	ve.add(field, ProblemTooLong, fmt.Sprintf("%s must be at most %d characters long", field, max))
}

func (ve *ValidationError) badValue(field, reason string) {
	ve.add(field, ProblemValue, fmt.Sprintf("%s %s", field, reason))
}
