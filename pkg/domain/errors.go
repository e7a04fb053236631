package domain

import (
	"errors"
)

var (
	// ErrUsage is returned when a command receives the wrong number of arguments.
	ErrUsage = errors.New("usage error")

	// ErrNotFound is returned when a path does not exist, is of the wrong kind,
	// or escapes the sandbox.
	ErrNotFound = errors.New("not found")

	// ErrBadMode is returned when a chmod mode is not a valid octal number.
	ErrBadMode = errors.New("bad mode")

	// ErrIO is returned when the host filesystem operation itself fails.
	ErrIO = errors.New("io error")

	// ErrUnknownCommand is returned for an unrecognized verb.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNoSandbox is returned when a path-dependent command runs before any
	// sandbox root has been established. Unlike the others it is not recovered.
	ErrNoSandbox = errors.New("sandbox root not initialized")
)

// CommandError is a recovered command failure.
// Message is the user-visible text; Kind is one of the sentinel errors above.
type CommandError struct {
	Kind    error
	Message string
	Cause   error
}

// NewCommandError builds a CommandError.
func NewCommandError(kind error, cause error, message string) *CommandError {
	return &CommandError{Kind: kind, Message: message, Cause: cause}
}

func (e *CommandError) Error() string {
	if e.Cause != nil {
		return e.Kind.Error() + ": " + e.Cause.Error()
	}
	return e.Kind.Error()
}

func (e *CommandError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// Outcome names the error kind for logs and metrics ("ok" for nil).
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUsage):
		return "usage"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrBadMode):
		return "bad_mode"
	case errors.Is(err, ErrIO):
		return "io"
	case errors.Is(err, ErrUnknownCommand):
		return "unknown_command"
	default:
		return "error"
	}
}
