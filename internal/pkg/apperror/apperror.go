package apperror

import "fmt"

// NotFoundError signals that a row does not exist for the requesting user.
// Services return it from mutating operations; lookups return nil instead.
type NotFoundError struct {
	Resource string
	Id       uint
	UserId   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found for user %s", e.Resource, e.Id, e.UserId)
}

func NewNotFound(resource string, id uint, userId string) *NotFoundError {
	return &NotFoundError{Resource: resource, Id: id, UserId: userId}
}

// ProviderError marks a turn that failed at the LLM boundary. Message is
// the sanitized user-facing string; Err keeps the raw detail for logs.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProvider(message string, err error) *ProviderError {
	return &ProviderError{Message: message, Err: err}
}

// ValidationError signals a rejected input (empty title, bad role, etc).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}
