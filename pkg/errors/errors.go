package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Directive errors
	ErrMismatchedEndif ErrorCode = "MISMATCHED_ENDIF"
	ErrMismatchedIf    ErrorCode = "MISMATCHED_IF"
	ErrConditionParse  ErrorCode = "CONDITION_PARSE"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrWalk      ErrorCode = "WALK"
)

// TemplaterError represents a structured error with code and details
type TemplaterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TemplaterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TemplaterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TemplaterError) Is(target error) bool {
	var targetErr *TemplaterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TemplaterError with the given code and message
func New(code ErrorCode, message string) *TemplaterError {
	return &TemplaterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TemplaterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TemplaterError {
	return &TemplaterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TemplaterError
func Wrap(err error, code ErrorCode, message string) *TemplaterError {
	if err == nil {
		return nil
	}
	return &TemplaterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TemplaterError {
	if err == nil {
		return nil
	}
	return &TemplaterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TemplaterError) WithDetail(key string, value interface{}) *TemplaterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TemplaterError) WithDetails(details map[string]interface{}) *TemplaterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tErr *TemplaterError
	if errors.As(err, &tErr) {
		return tErr.Code == code
	}
	return false
}

// IsStructural reports whether err is an #if/#endif nesting or condition error.
// These abort a run; filesystem errors are reported separately.
func IsStructural(err error) bool {
	switch GetErrorCode(err) {
	case ErrMismatchedEndif, ErrMismatchedIf, ErrConditionParse:
		return true
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TemplaterError
func GetErrorCode(err error) ErrorCode {
	var tErr *TemplaterError
	if errors.As(err, &tErr) {
		return tErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TemplaterError
func GetErrorDetails(err error) map[string]interface{} {
	var tErr *TemplaterError
	if errors.As(err, &tErr) {
		return tErr.Details
	}
	return nil
}
