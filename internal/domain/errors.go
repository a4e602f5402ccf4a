package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entity does not exist or is not visible to the caller
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// ErrDuplicateKey is raised by the entity store on a unique constraint violation
type ErrDuplicateKey struct {
	Entity string
	Field  string
	// Message is the user facing text, set by the service that knows the context
	Message string
}

func (e *ErrDuplicateKey) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}

var (
	// ErrUnauthorized covers missing, invalid or expired credentials
	ErrUnauthorized = errors.New("não autorizado")
	// ErrForbidden is returned when a resource belongs to another user
	ErrForbidden = errors.New("acesso negado")
	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("Credenciais inválidas")
)

// UpstreamError describes a failed call to the Facebook Conversions API
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("facebook api error (status %d): %v", e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("facebook api request failed: %v", e.Err)
	default:
		return fmt.Sprintf("facebook api error (status %d): %s", e.StatusCode, e.Body)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Detail returns what gets recorded in facebook_response when a send fails:
// the upstream body when there is one, the transport error otherwise
func (e *UpstreamError) Detail() string {
	if e.Body != "" {
		return e.Body
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// IsNotFound reports whether err is (or wraps) an ErrNotFound
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}
