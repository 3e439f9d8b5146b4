package errors

import "errors"

// Kind separates mistakes the person at the menu can correct from failures
// of the database underneath.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindNotFound
	KindDatabase
	KindTimeout
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindDatabase:
		return "database"
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// userFacing kinds carry a message written for the prompt and are never
// logged.
func (k Kind) userFacing() bool {
	return k == KindInvalidInput || k == KindNotFound
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasKind reports whether err wraps an *Error of kind k.
func HasKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}

// UserMessage returns the text shown at the prompt. Database failures are
// summarised; the cause goes to the log instead.
func UserMessage(err error) string {
	e, ok := As(err)
	if !ok {
		return err.Error()
	}
	switch e.Kind {
	case KindInvalidInput, KindNotFound:
		return e.Message
	case KindDatabase:
		return "A database error occurred. Please try again."
	case KindTimeout:
		return "The database did not respond in time. Please try again."
	case KindConnection:
		return "Could not connect to the database."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// ShouldLog reports whether err is a system failure rather than bad input.
// Errors from outside this package are always logged.
func ShouldLog(err error) bool {
	e, ok := As(err)
	return !ok || !e.Kind.userFacing()
}
