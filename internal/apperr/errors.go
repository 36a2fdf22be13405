// Package apperr defines the error taxonomy shared by repositories,
// middleware, and handlers. Handlers translate these into HTTP statuses;
// anything outside the taxonomy is treated as an internal error.
package apperr

import "errors"

var (
	// ErrNotFound covers both "does not exist" and "exists but owned by
	// another user" so responses never leak record existence across accounts.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail maps the unique-constraint violation on users.email.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidToken covers malformed, tampered, and expired session tokens
	// alike. Callers must not distinguish between the causes.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports a single malformed or missing input field. Message
// is the client-facing text; Field names the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError for the given field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation extracts a ValidationError from err, if present.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
