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
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Manifest errors
	ErrManifestUnreadable ErrorCode = "MANIFEST_UNREADABLE"

	// Version errors
	ErrMalformedVersion ErrorCode = "MALFORMED_VERSION"

	// Subprocess errors
	ErrSubprocessUnavailable ErrorCode = "SUBPROCESS_UNAVAILABLE"
	ErrSubprocessTimeout     ErrorCode = "SUBPROCESS_TIMEOUT"
	ErrSubprocessFailed      ErrorCode = "SUBPROCESS_FAILED"
)

// DotdoctorError represents a structured error with code and details
type DotdoctorError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotdoctorError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotdoctorError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotdoctorError) Is(target error) bool {
	var targetErr *DotdoctorError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotdoctorError with the given code and message
func New(code ErrorCode, message string) *DotdoctorError {
	return &DotdoctorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotdoctorError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotdoctorError {
	return &DotdoctorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotdoctorError
func Wrap(err error, code ErrorCode, message string) *DotdoctorError {
	if err == nil {
		return nil
	}
	return &DotdoctorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotdoctorError {
	if err == nil {
		return nil
	}
	return &DotdoctorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotdoctorError) WithDetail(key string, value interface{}) *DotdoctorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ddErr *DotdoctorError
	if errors.As(err, &ddErr) {
		return ddErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotdoctorError
func GetErrorCode(err error) ErrorCode {
	var ddErr *DotdoctorError
	if errors.As(err, &ddErr) {
		return ddErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotdoctorError
func GetErrorDetails(err error) map[string]interface{} {
	var ddErr *DotdoctorError
	if errors.As(err, &ddErr) {
		return ddErr.Details
	}
	return nil
}

// Message returns the human readable message of a DotdoctorError without
// its code prefix. Other errors are returned via their Error method.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ddErr *DotdoctorError
	if errors.As(err, &ddErr) {
		if ddErr.Wrapped != nil {
			return fmt.Sprintf("%s: %v", ddErr.Message, ddErr.Wrapped)
		}
		return ddErr.Message
	}
	return err.Error()
}
