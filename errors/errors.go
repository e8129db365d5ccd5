// Package errors provides standardized error handling for the container
// library. It includes error classification, standard error variables, and
// helper functions for consistent error wrapping across packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorOutOfRange represents violations of a capacity or size
	// precondition: the operation cannot be satisfied by the elements or
	// free slots currently available
	ErrorOutOfRange ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input or configuration
	ErrorInvalid
	// ErrorFatal represents unrecoverable errors that should stop processing
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorOutOfRange:
		return "out_of_range"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// ErrOutOfRange is the root sentinel for every capacity or size
	// precondition violation. The specific conditions below wrap it, so
	// errors.Is(err, ErrOutOfRange) matches all of them.
	ErrOutOfRange = errors.New("out of range")

	// Container state errors
	ErrFull              = fmt.Errorf("container full: %w", ErrOutOfRange)
	ErrEmpty             = fmt.Errorf("container empty: %w", ErrOutOfRange)
	ErrIndexOutOfRange   = fmt.Errorf("index beyond valid elements: %w", ErrOutOfRange)
	ErrInsufficientSpace = fmt.Errorf("not enough free space: %w", ErrOutOfRange)
	ErrInsufficientItems = fmt.Errorf("not enough items queued: %w", ErrOutOfRange)

	// Construction errors
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// Configuration errors
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrMissingConfig  = errors.New("missing required configuration")
	ErrConfigNotFound = errors.New("configuration not found")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsOutOfRange checks if an error is a capacity or size precondition violation
func IsOutOfRange(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorOutOfRange
	}

	return errors.Is(err, ErrOutOfRange)
}

// IsInvalid checks if an error is due to invalid input or configuration
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	// Check for known invalid errors
	if errors.Is(err, ErrInvalidCapacity) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrConfigNotFound) {
		return true
	}

	return false
}

// IsFatal checks if an error is fatal and should stop processing
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return false
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if IsOutOfRange(err) {
		return ErrorOutOfRange
	}
	if IsFatal(err) {
		return ErrorFatal
	}

	// Default to invalid for unknown errors: nothing in this library is
	// retriable, so caller misuse is the safest assumption
	return ErrorInvalid
}

// newClassified creates a new classified error
// This is an internal helper - use WrapOutOfRange(), WrapInvalid(), or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapOutOfRange wraps an error as an out-of-range violation with context
func WrapOutOfRange(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorOutOfRange, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}
