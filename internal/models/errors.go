package models

import "errors"

// Domain errors shared by repositories, services and handlers. Handlers map
// them onto HTTP status codes and localized messages.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInsufficientStock  = errors.New("requested export exceeds stock on hand")
	ErrConcurrentUpdate   = errors.New("record was modified concurrently, please retry")
	ErrReferenced         = errors.New("record is still referenced by other data")
	ErrDuplicate          = errors.New("record already exists")
	ErrForbidden          = errors.New("permission denied")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrOrderCreation      = errors.New("order creation failed")
)

// ValidationError reports a rule violation on a single input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation helps callers distinguish between input and infrastructure failures.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// RaisedError carries a message raised explicitly by the database
// (RAISE EXCEPTION in a PostgreSQL function or trigger).
type RaisedError struct {
	Message string
}

func (e *RaisedError) Error() string { return e.Message }
