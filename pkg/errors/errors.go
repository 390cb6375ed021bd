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

	// Destination errors
	ErrDestinationNotFound ErrorCode = "DESTINATION_NOT_FOUND"
	ErrDestinationNotDir   ErrorCode = "DESTINATION_NOT_DIR"

	// Rule errors
	ErrEmptyPatterns ErrorCode = "EMPTY_PATTERNS"
	ErrInvalidKind   ErrorCode = "INVALID_KIND"

	// Rule file errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigFormat   ErrorCode = "CONFIG_FORMAT"
	ErrConfigRead     ErrorCode = "CONFIG_READ"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"

	// Settings errors
	ErrSettingsLoad ErrorCode = "SETTINGS_LOAD"

	// Execution errors, reported per entry
	ErrListDir ErrorCode = "LIST_DIR"
	ErrRemove  ErrorCode = "REMOVE"
)

// Category groups error codes by who has to act on them.
type Category int

const (
	// CategoryUsage means the user supplied bad input
	CategoryUsage Category = iota
	// CategoryFunctionality means an I/O or parse failure
	CategoryFunctionality
	// CategoryInternal means a bug in neaten
	CategoryInternal
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case CategoryUsage:
		return "usage"
	case CategoryFunctionality:
		return "functionality"
	default:
		return "internal"
	}
}

var categories = map[ErrorCode]Category{
	ErrInvalidInput:        CategoryUsage,
	ErrDestinationNotFound: CategoryUsage,
	ErrDestinationNotDir:   CategoryUsage,
	ErrEmptyPatterns:       CategoryUsage,
	ErrInvalidKind:         CategoryUsage,
	ErrConfigNotFound:      CategoryUsage,
	ErrConfigFormat:        CategoryUsage,
	ErrConfigRead:          CategoryFunctionality,
	ErrConfigParse:         CategoryFunctionality,
	ErrSettingsLoad:        CategoryFunctionality,
	ErrListDir:             CategoryFunctionality,
	ErrRemove:              CategoryFunctionality,
}

// NeatenError represents a structured error with code and details
type NeatenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NeatenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NeatenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NeatenError) Is(target error) bool {
	var targetErr *NeatenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Category returns the category of the error code
func (e *NeatenError) Category() Category {
	if c, ok := categories[e.Code]; ok {
		return c
	}
	return CategoryInternal
}

// New creates a new NeatenError with the given code and message
func New(code ErrorCode, message string) *NeatenError {
	return &NeatenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NeatenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NeatenError {
	return &NeatenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NeatenError
func Wrap(err error, code ErrorCode, message string) *NeatenError {
	if err == nil {
		return nil
	}
	return &NeatenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NeatenError {
	if err == nil {
		return nil
	}
	return &NeatenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NeatenError) WithDetail(key string, value interface{}) *NeatenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var neatenErr *NeatenError
	if errors.As(err, &neatenErr) {
		return neatenErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NeatenError
func GetErrorCode(err error) ErrorCode {
	var neatenErr *NeatenError
	if errors.As(err, &neatenErr) {
		return neatenErr.Code
	}
	return ErrUnknown
}

// GetCategory returns the category of err. Errors that are not a
// NeatenError are internal.
func GetCategory(err error) Category {
	var neatenErr *NeatenError
	if errors.As(err, &neatenErr) {
		return neatenErr.Category()
	}
	return CategoryInternal
}

// GetErrorDetails returns the details from an error, or nil if not a NeatenError
func GetErrorDetails(err error) map[string]interface{} {
	var neatenErr *NeatenError
	if errors.As(err, &neatenErr) {
		return neatenErr.Details
	}
	return nil
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
