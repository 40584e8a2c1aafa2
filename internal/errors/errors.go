// Package errors provides sentinel errors and structured error details for icongen.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrIO indicates an icon directory, icon file, or output path could not be
	// read or written.
	ErrIO = errors.New("io error")

	// ErrTransform indicates icon markup was rejected by a framework adapter.
	ErrTransform = errors.New("transform error")

	// ErrConfig indicates a missing package argument, an unsupported framework,
	// an invalid base manifest, or invalid configuration.
	ErrConfig = errors.New("config error")
)

// Exit codes returned by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigError indicates invalid arguments, configuration, or manifest.
	ExitConfigError = 2

	// ExitIOError indicates a filesystem read or write failed.
	ExitIOError = 3

	// ExitTransformError indicates an icon could not be transformed.
	ExitTransformError = 4
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set once the error has been reported to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrTransform):
		return ExitTransformError
	default:
		return ExitGeneralError
	}
}

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error relates to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}

	if e.Cause != nil && !isSentinel(e.Cause) {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// Is reports whether the detail error belongs to the given sentinel category.
func (e *DetailError) Is(target error) bool {
	return target == e.category()
}

func (e *DetailError) category() error {
	switch e.Type {
	case typeIO:
		return ErrIO
	case typeTransform:
		return ErrTransform
	case typeConfig:
		return ErrConfig
	default:
		return nil
	}
}

const (
	typeIO        = "io error"
	typeTransform = "transform failed"
	typeConfig    = "invalid configuration"
)

func isSentinel(err error) bool {
	return err == ErrIO || err == ErrTransform || err == ErrConfig
}

// NewIOError creates an IO error for the given path.
func NewIOError(message, location string, cause error) error {
	return &DetailError{
		Type:     typeIO,
		Message:  message,
		Location: location,
		Cause:    cause,
	}
}

// NewTransformError creates a transform error for the given icon.
func NewTransformError(message, location string, cause error) error {
	return &DetailError{
		Type:     typeTransform,
		Message:  message,
		Location: location,
		Cause:    cause,
	}
}

// NewConfigError creates a configuration error with an optional hint.
func NewConfigError(message, hint string) error {
	return &DetailError{
		Type:    typeConfig,
		Message: message,
		Hint:    hint,
	}
}

// WrapConfig marks err as a configuration error for the given path.
func WrapConfig(err error, message, location string) error {
	return &DetailError{
		Type:     typeConfig,
		Message:  message,
		Location: location,
		Cause:    err,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
