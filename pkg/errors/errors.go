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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrPermission     ErrorCode = "PERMISSION"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Discovery errors
	ErrDiscovery    ErrorCode = "DISCOVERY_FAILURE"
	ErrNotDirectory ErrorCode = "NOT_A_DIRECTORY"

	// Font store errors
	ErrStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrStoreQuery       ErrorCode = "STORE_QUERY"
	ErrStoreWrite       ErrorCode = "STORE_WRITE"

	// Installation errors
	ErrInvalidFont   ErrorCode = "INVALID_FONT"
	ErrInstallFailed ErrorCode = "INSTALL_FAILED"

	// Archive errors
	ErrExtract ErrorCode = "EXTRACT_FAILURE"
)

// InstallerError represents a structured error with code and details
type InstallerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *InstallerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *InstallerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *InstallerError) Is(target error) bool {
	var targetErr *InstallerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new InstallerError with the given code and message
func New(code ErrorCode, message string) *InstallerError {
	return &InstallerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new InstallerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InstallerError {
	return &InstallerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an InstallerError
func Wrap(err error, code ErrorCode, message string) *InstallerError {
	if err == nil {
		return nil
	}
	return &InstallerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InstallerError {
	if err == nil {
		return nil
	}
	return &InstallerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *InstallerError) WithDetail(key string, value interface{}) *InstallerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var instErr *InstallerError
	if errors.As(err, &instErr) {
		return instErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an InstallerError
func GetErrorCode(err error) ErrorCode {
	var instErr *InstallerError
	if errors.As(err, &instErr) {
		return instErr.Code
	}
	return ErrUnknown
}
