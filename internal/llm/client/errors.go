package client

import (
	"errors"
	"fmt"
)

// ErrorKind names the member of the submission error union.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindRateLimit  ErrorKind = "rate_limit"
	KindServer     ErrorKind = "server"
	KindTimeout    ErrorKind = "timeout"
	KindUnknown    ErrorKind = "unknown"
)

const (
	rateLimitMessage     = "Rate limit exceeded. Please try again later."
	timeoutMessage       = "Request timed out. The server might be overloaded."
	unknownFaultFallback = "Unknown error"
)

// SubmissionError is a closed union. Only the types in this file implement it, so a
// type switch over *ValidationError, *RateLimitError, *ServerError, *TimeoutError and
// *UnknownFault covers every case.
type SubmissionError interface {
	error
	Kind() ErrorKind
	submissionError()
}

// ValidationError is a precondition failure detected before any network activity.
type ValidationError struct {
	Message string
	// Field names the offending form field when there is one.
	Field string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string   { return e.Message }
func (e *ValidationError) Kind() ErrorKind { return KindValidation }
func (*ValidationError) submissionError()  {}

// RateLimitError means the endpoint answered 429. No retry is attempted.
type RateLimitError struct {
	StatusCode int
}

func (e *RateLimitError) Error() string   { return rateLimitMessage }
func (e *RateLimitError) Kind() ErrorKind { return KindRateLimit }
func (*RateLimitError) submissionError()  {}

// ServerError is any other non-2xx answer.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Server error: %d", e.StatusCode)
}
func (e *ServerError) Kind() ErrorKind { return KindServer }
func (*ServerError) submissionError()  {}

// TimeoutError replaces the context cancellation raised when the budget elapses.
type TimeoutError struct {
	Cause error
}

func (e *TimeoutError) Error() string   { return timeoutMessage }
func (e *TimeoutError) Unwrap() error   { return e.Cause }
func (e *TimeoutError) Kind() ErrorKind { return KindTimeout }
func (*TimeoutError) submissionError()  {}

// UnknownFault wraps anything else that went wrong during the call or while reading it.
type UnknownFault struct {
	Cause error
}

func (e *UnknownFault) Error() string {
	if e.Cause != nil && e.Cause.Error() != "" {
		return e.Cause.Error()
	}
	return unknownFaultFallback
}
func (e *UnknownFault) Unwrap() error   { return e.Cause }
func (e *UnknownFault) Kind() ErrorKind { return KindUnknown }
func (*UnknownFault) submissionError()  {}

// AsSubmissionError converts err into the union, folding foreign errors into UnknownFault.
func AsSubmissionError(err error) SubmissionError {
	if err == nil {
		return nil
	}
	var se SubmissionError
	if errors.As(err, &se) {
		return se
	}
	return &UnknownFault{Cause: err}
}
