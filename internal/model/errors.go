package model

import "fmt"

// ValidationError represents a local input validation failure,
// raised before any request is sent to the vendor.
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// APIError represents a failure reported by the Cetustek service.
// Code and Message are the vendor's values, kept verbatim.
type APIError struct {
	Op      string
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cetustek %s: api error %s: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("cetustek %s: api error %s", e.Op, e.Code)
}

// NewAPIError creates a new API error
func NewAPIError(op, code, message string) *APIError {
	return &APIError{
		Op:      op,
		Code:    code,
		Message: message,
	}
}

// TransportError represents a transport or response decoding failure:
// connection errors, unexpected HTTP status, unreadable or malformed payloads.
type TransportError struct {
	Op      string
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cetustek %s: %s (%v)", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("cetustek %s: %s", e.Op, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NewTransportError creates a new transport error
func NewTransportError(op, message string, cause error) *TransportError {
	return &TransportError{
		Op:      op,
		Message: message,
		Cause:   cause,
	}
}
