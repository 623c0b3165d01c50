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

	// Configuration errors
	ErrConfigLoad        ErrorCode = "CONFIG_LOAD"
	ErrConfigParse       ErrorCode = "CONFIG_PARSE"
	ErrInvalidOutputMode ErrorCode = "INVALID_OUTPUT_MODE"

	// Fatal search errors: the run stops before any file is read
	ErrDirectoryNotFound ErrorCode = "DIRECTORY_NOT_FOUND"
	ErrInvalidPattern    ErrorCode = "INVALID_PATTERN"

	// Recoverable search errors: reported, counted and absorbed
	ErrDirectoryListing ErrorCode = "DIRECTORY_LISTING"
	ErrFileRead         ErrorCode = "FILE_READ"
)

// SearchError represents a structured error with code and details
type SearchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SearchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SearchError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SearchError) Is(target error) bool {
	var targetErr *SearchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SearchError with the given code and message
func New(code ErrorCode, message string) *SearchError {
	return &SearchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SearchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SearchError {
	return &SearchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SearchError
func Wrap(err error, code ErrorCode, message string) *SearchError {
	if err == nil {
		return nil
	}
	return &SearchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SearchError {
	if err == nil {
		return nil
	}
	return &SearchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SearchError) WithDetail(key string, value interface{}) *SearchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SearchError) WithDetails(details map[string]interface{}) *SearchError {
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
	var searchErr *SearchError
	if errors.As(err, &searchErr) {
		return searchErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SearchError
func GetErrorCode(err error) ErrorCode {
	var searchErr *SearchError
	if errors.As(err, &searchErr) {
		return searchErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SearchError
func GetErrorDetails(err error) map[string]interface{} {
	var searchErr *SearchError
	if errors.As(err, &searchErr) {
		return searchErr.Details
	}
	return nil
}

// IsFatal reports whether err aborts a whole search run.
func IsFatal(err error) bool {
	switch GetErrorCode(err) {
	case ErrDirectoryNotFound, ErrInvalidPattern:
		return true
	}
	return false
}
