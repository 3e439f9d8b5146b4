package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

// ErrorHandler turns errors from the service and menu into what the user
// sees, and logs the ones that are not their fault.
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// HandleSimple replaces err with its user-facing message.
func (eh *ErrorHandler) HandleSimple(err error) error {
	return stderrors.New(eh.message(err))
}

// Report prints the user-facing message to w. System failures are logged at
// error level; input mistakes only at debug, with the same fields.
func (eh *ErrorHandler) Report(w io.Writer, err error) {
	event := log.Debug()
	if eh.ShouldLog(err) {
		event = log.Error()
	}
	if appErr, ok := errors.As(err); ok {
		event = event.Str("kind", appErr.Kind.String()).Fields(appErr.Fields)
	}
	event.Err(err).Msg("Operation failed")

	fmt.Fprintf(w, "\n%s\n", eh.message(err))
}

// ShouldLog reports whether err is a system failure rather than bad input.
func (eh *ErrorHandler) ShouldLog(err error) bool {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return false
	}
	return errors.ShouldLog(err)
}

func (eh *ErrorHandler) message(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.UserMessage()
	}
	return errors.UserMessage(err)
}
