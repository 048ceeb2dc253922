package errors

import "fmt"

// Error codes
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeStorage    = "STORAGE_ERROR"
)

type AppError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(message, code string, context map[string]any) *AppError {
	return &AppError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// ValidationError reports operator input that was rejected before it touched
// any store.
type ValidationError struct {
	*AppError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// NotFoundError reports a lookup key with no matching record.
type NotFoundError struct {
	*AppError
	Kind string
	Key  string
}

func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{
		AppError: &AppError{
			Message: fmt.Sprintf("no %s found for %q", kind, key),
			Code:    CodeNotFound,
			Context: map[string]any{
				"kind": kind,
				"key":  key,
			},
		},
		Kind: kind,
		Key:  key,
	}
}

// StorageError reports a failed persistence operation.
type StorageError struct {
	*AppError
	Op   string
	Path string
}

func NewStorageError(message, op, path string, cause error) *StorageError {
	return &StorageError{
		AppError: &AppError{
			Message: message,
			Code:    CodeStorage,
			Context: map[string]any{
				"operation": op,
				"path":      path,
			},
			Cause: cause,
		},
		Op:   op,
		Path: path,
	}
}
