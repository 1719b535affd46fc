// Package errors defines the coded error type used across idswap.
//
// Every fatal condition surfaces as an *IdswapError carrying a stable
// ErrorCode, so callers and tests can branch on the kind of failure
// without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Traversal errors
	ErrScanFailed   ErrorCode = "SCAN_FAILED"
	ErrDirRead      ErrorCode = "DIR_READ"
	ErrRenameFailed ErrorCode = "RENAME_FAILED"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrRootFailed   ErrorCode = "ROOT_FAILED"

	// Collaborator errors
	ErrUsercacheRead  ErrorCode = "USERCACHE_READ"
	ErrUsercacheParse ErrorCode = "USERCACHE_PARSE"
	ErrHTTPRequest    ErrorCode = "HTTP_REQUEST"
	ErrHTTPStatus     ErrorCode = "HTTP_STATUS"
	ErrLookupFailed   ErrorCode = "LOOKUP_FAILED"
	ErrMapLoad        ErrorCode = "MAP_LOAD"
	ErrMapSave        ErrorCode = "MAP_SAVE"
)

// IdswapError represents a structured error with code and details
type IdswapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *IdswapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *IdswapError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an IdswapError with the same code
func (e *IdswapError) Is(target error) bool {
	var targetErr *IdswapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new IdswapError with the given code and message
func New(code ErrorCode, message string) *IdswapError {
	return &IdswapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new IdswapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *IdswapError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *IdswapError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *IdswapError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *IdswapError) WithDetail(key string, value interface{}) *IdswapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var idErr *IdswapError
	if errors.As(err, &idErr) {
		return idErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an IdswapError
func GetErrorCode(err error) ErrorCode {
	var idErr *IdswapError
	if errors.As(err, &idErr) {
		return idErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an IdswapError
func GetErrorDetails(err error) map[string]interface{} {
	var idErr *IdswapError
	if errors.As(err, &idErr) {
		return idErr.Details
	}
	return nil
}
