package validation

import (
	"task-manager/internal/config"
	"task-manager/internal/domain"
)

// TaskValidator checks what the menu and the service receive before any of
// it reaches the repository.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator applies the limits from cfg; nil uses the defaults.
func NewTaskValidator(cfg *config.Config) *TaskValidator {
	return &TaskValidator{validator: NewValidator(cfg)}
}

// ValidateTaskForCreation checks title and description together and reports
// every problem at once.
func (tv *TaskValidator) ValidateTaskForCreation(title, description string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(title) {
		validationError.missing("title")
	} else if max := tv.validator.TitleMaxLength(); !tv.validator.IsWithinMaxLength(title, max) {
		validationError.tooLong("title", max)
	}
	if !tv.validator.IsNonEmptyString(description) {
		validationError.missing("description")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.badValue("task_id", "must be a positive integer")
		return validationError
	}
	return nil
}

// ParseTaskID turns typed input into an id. Non-integer input is a format
// error; zero or negative numbers are parsed but reported as invalid values.
func (tv *TaskValidator) ParseTaskID(input string) (int64, error) {
	id, ok := tv.validator.ParseInt64(input)
	if !ok {
		validationError := NewValidationError()
		validationError.badFormat("task_id", "a whole number")
		return 0, validationError
	}
	if err := tv.ValidateTaskID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// ValidateStatus checks a raw status string against the enumeration.
func (tv *TaskValidator) ValidateStatus(status string) (domain.Status, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		validationError := NewValidationError()
		validationError.badValue("status", "must be one of not-started, in-progress, done")
		return "", validationError
	}
	return parsed, nil
}

// CleanTask returns trimmed title and description if both are valid.
func (tv *TaskValidator) CleanTask(title, description string) (string, string, error) {
	if err := tv.ValidateTaskForCreation(title, description); err != nil {
		return "", "", err
	}
	return tv.validator.TrimAndValidateString(title), tv.validator.TrimAndValidateString(description), nil
}
