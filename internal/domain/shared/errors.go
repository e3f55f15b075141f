// Package shared contains common domain errors that are used across all
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Input errors
	ErrParse         = errors.New("parse error")
	ErrValidation    = errors.New("validation error")
	ErrInvalidFormat = errors.New("invalid format")

	// Lookup errors
	ErrNotFound     = errors.New("not found")
	ErrFileNotFound = errors.New("file not found")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "lottery", "student"
	Op      string // Operation that failed, e.g., "ParseNumbers", "SetName"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsParse checks if the error is a malformed-input error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound checks if the error is a lookup ("not found") error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsFileNotFound checks if the error reports a missing file.
func IsFileNotFound(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}
