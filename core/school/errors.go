package school

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateID     = errors.New("a record with this id already exists")
	ErrMissingID       = errors.New("id is required")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidStatus   = errors.New("invalid leave status")
	ErrAlreadyResolved = errors.New("leave request has already been resolved")
	ErrNegativeCount   = errors.New("period counts cannot be negative")
	ErrUnknownAction   = errors.New("unknown action")
)

// ParseError is returned when the timetable parser fails; the timetable is left untouched.
type ParseError struct {
	Err error
}

func NewParseError(format string, args ...interface{}) *ParseError {
	return &ParseError{Err: fmt.Errorf(format, args...)}
}

func (e *ParseError) Error() string {
	return "Failed to parse timetable. Gemini API Error: " + e.Err.Error()
}

// Unwrap exposes the underlying failure to errors.Is/As; errors.Cause stops at the ParseError.
func (e *ParseError) Unwrap() error { return e.Err }
