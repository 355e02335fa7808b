// Package domain defines the core domain models for sortbench.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
// Codes have the form SB-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "SB-INPUT-4002")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another DomainError by code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Input Errors (INPUT)
// ============================================================================

var (
	// ErrMalformedNumber indicates a prompt answer or flag is not an integer.
	ErrMalformedNumber = NewDomainError("SB-INPUT-4000", "malformed number")

	// ErrInvalidSize indicates a negative problem size.
	ErrInvalidSize = NewDomainError("SB-INPUT-4001", "problem size must not be negative")

	// ErrInvalidIterations indicates an iteration count below one.
	ErrInvalidIterations = NewDomainError("SB-INPUT-4002", "number of iterations must be at least 1")

	// ErrUnexpectedEOF indicates input ended before a value was read.
	ErrUnexpectedEOF = NewDomainError("SB-INPUT-4003", "unexpected end of input")
)

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrInvalidConfig indicates a configuration value is out of range.
	ErrInvalidConfig = NewDomainError("SB-CONF-4000", "invalid configuration")

	// ErrUnknownAlgorithm indicates an algorithm id that is not registered.
	ErrUnknownAlgorithm = NewDomainError("SB-CONF-4001", "unknown algorithm")
)
