// Package errors provides the error types raised by the ARN parser and
// the console link resolver. Every failure is terminal and carries an
// error code for programmatic handling; nothing is retried or logged.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a parse or resolution failure with an associated error code.
type Error struct {
	// Code is an error code string for programmatic handling
	Code string
	// Message is a user-friendly error message
	Message string
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to match two Errors by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code != "" && e.Code == t.Code
	}
	return false
}

// Predefined error codes.
const (
	// Parser error codes.
	ErrCodeTypeMismatch      = "TYPE_MISMATCH"
	ErrCodeTooLong           = "TOO_LONG"
	ErrCodeInvalidCharacters = "INVALID_CHARACTERS"
	ErrCodeMalformedArn      = "MALFORMED_ARN"
	ErrCodeInvalidRegion     = "INVALID_REGION"

	// Resolver error codes.
	ErrCodeNotAnArn                = "NOT_AN_ARN"
	ErrCodeUnsupportedPartition    = "UNSUPPORTED_PARTITION"
	ErrCodeUnknownService          = "UNKNOWN_SERVICE"
	ErrCodeUnsupportedResourceType = "UNSUPPORTED_RESOURCE_TYPE"
)

// Convenience constructors, one per failure mode.

// ErrTypeMismatch creates a type mismatch error for non-string input.
func ErrTypeMismatch(got any) *Error {
	return &Error{
		Code:    ErrCodeTypeMismatch,
		Message: fmt.Sprintf("expected a string, got %T", got),
	}
}

// ErrTooLong creates an error for input exceeding the maximum ARN length.
func ErrTooLong(length, limit int) *Error {
	return &Error{
		Code:    ErrCodeTooLong,
		Message: fmt.Sprintf("input is %d characters, limit is %d", length, limit),
	}
}

// ErrInvalidCharacters creates an error for input containing disallowed characters.
func ErrInvalidCharacters() *Error {
	return &Error{
		Code:    ErrCodeInvalidCharacters,
		Message: "input contains characters outside the allowed ARN character set",
	}
}

// ErrMalformedArn creates an error for input that does not tokenize as an ARN.
func ErrMalformedArn(reason string) *Error {
	return &Error{
		Code:    ErrCodeMalformedArn,
		Message: "malformed ARN: " + reason,
	}
}

// ErrInvalidRegion creates an error for a region field that is not hostname-safe.
func ErrInvalidRegion(region string) *Error {
	return &Error{
		Code:    ErrCodeInvalidRegion,
		Message: fmt.Sprintf("region %q is not a valid region name", region),
	}
}

// ErrNotAnArn creates an error for input whose prefix segment is not "arn".
func ErrNotAnArn(prefix string) *Error {
	return &Error{
		Code:    ErrCodeNotAnArn,
		Message: fmt.Sprintf("prefix %q is not %q", prefix, "arn"),
	}
}

// ErrUnsupportedPartition creates an error for a partition with no known console endpoint.
func ErrUnsupportedPartition(partition string) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedPartition,
		Message: fmt.Sprintf("no console endpoint for partition %q", partition),
	}
}

// ErrUnknownService creates an error for a service absent from the link table.
func ErrUnknownService(service string) *Error {
	return &Error{
		Code:    ErrCodeUnknownService,
		Message: fmt.Sprintf("service %q is not supported", service),
	}
}

// ErrUnsupportedResourceType creates an error for a resource type with no link template.
// It covers both an absent type key and a known type with no modeled link.
func ErrUnsupportedResourceType(service, resourceType string) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedResourceType,
		Message: fmt.Sprintf("no link available for service %q resource type %q", service, resourceType),
	}
}

// GetErrorCode extracts the error code from an error.
// Returns empty string if the error is not an Error.
func GetErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetErrorMessage extracts a user-friendly message from an error.
func GetErrorMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
