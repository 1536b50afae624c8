package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by Authenticate when the email is
// unknown or the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError rejects an operation before anything is persisted. Field
// names the offending input field so the surface can attach the message to
// the right form control.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError unwraps err as a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
