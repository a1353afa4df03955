package domain

import "errors"

var (
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("Email already registered with TZT mesh.")
	// ErrInvalidCredentials covers unknown email, missing local credential
	// and wrong password alike; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("Invalid credentials provided to the mesh.")
	// ErrInvalidToken indicates a malformed, tampered or expired token.
	ErrInvalidToken = errors.New("Invalid or expired transmission token.")
	// ErrNotFound indicates a missing record.
	ErrNotFound = errors.New("record not found")
)

// ValidationError reports the first violated field of a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
