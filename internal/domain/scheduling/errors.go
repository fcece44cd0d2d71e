package scheduling

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("shift not found")

// ValidationError reports a malformed candidate shift. It is surfaced to the
// caller for correction and is never retried internally.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid shift: %s %s", e.Field, e.Reason)
}

// ConflictError names the employee and the existing window the candidate
// collides with.
type ConflictError struct {
	EmployeeID    string
	ConflictStart time.Time
	ConflictEnd   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"employee %s already has a shift from %s to %s",
		e.EmployeeID,
		e.ConflictStart.Format(time.RFC3339),
		e.ConflictEnd.Format(time.RFC3339),
	)
}
