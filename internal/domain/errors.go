// Package domain holds the entities shared by repositories, services and
// handlers, together with the sentinel errors the service layer reports.
// Handlers translate sentinels into HTTP status codes; everything is
// recoverable at the caller.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a flight, booking or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSeatsUnavailable is returned when a booking is attempted against a
	// flight with no free seats. The seat count is left untouched.
	ErrSeatsUnavailable = errors.New("no seats available")

	// ErrInvalidSeatClass is returned for seat class labels other than
	// Economy, Business and First Class.
	ErrInvalidSeatClass = errors.New("invalid seat class")

	// ErrInvalidState is returned when an operation does not apply to the
	// entity's current status, e.g. cancelling an already cancelled booking.
	ErrInvalidState = errors.New("invalid state")

	// ErrForbidden is returned when a customer touches a booking owned by
	// someone else.
	ErrForbidden = errors.New("forbidden")

	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPersistence wraps store failures (unreachable database, failed
	// statement). Transactions guarantee nothing is partially applied.
	ErrPersistence = errors.New("persistence failure")

	// ErrReportUnavailable wraps store failures during report aggregation.
	ErrReportUnavailable = errors.New("report unavailable")
)

// ValidationError reports bad or missing input. It is raised before any
// store access happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
