package crossref

import (
	"errors"
	"fmt"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

// Error types of the lower layers, re-exported so callers need a single import.
type (
	RouteError          = query.RouteError
	DecodeError         = response.DecodeError
	MissingMessageError = response.MissingMessageError
	UnexpectedItemError = response.UnexpectedItemError
)

// Common static errors that can be wrapped with context.
var (
	ErrNoMorePages       = errors.New("no more pages")
	ErrConfigRequired    = errors.New("config is required")
	ErrBaseURLRequired   = errors.New("base URL is required")
	ErrInvalidBaseURL    = errors.New("invalid base URL")
	ErrNegativeSample    = errors.New("sample size must be positive")
	ErrUnexpectedStatus  = errors.New("unexpected HTTP status")
	ErrResourceNotFound  = response.ErrResourceNotFound
	ErrValidationFailure = errors.New("request failed validation")
)

// TransportError reports a failure to obtain a response body: a network error
// or an HTTP status the decoder cannot interpret.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("requesting %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("requesting %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResourceNotFoundError reports an identifier the API does not know.
type ResourceNotFoundError struct {
	Request query.ResourceRequest
}

// Error implements the error interface.
func (e *ResourceNotFoundError) Error() string {
	route, err := e.Request.Route()
	if err != nil {
		return fmt.Sprintf("%s %s: %v", e.Request.Component(), e.Request.ID(), ErrResourceNotFound)
	}

	return fmt.Sprintf("%s: %v", route, ErrResourceNotFound)
}

// Unwrap lets errors.Is match ErrResourceNotFound.
func (e *ResourceNotFoundError) Unwrap() error {
	return ErrResourceNotFound
}

// ValidationError carries the reasons the server rejected a request.
type ValidationError struct {
	Failures response.ValidationFailure
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Failures) == 0 {
		return ErrValidationFailure.Error()
	}

	if len(e.Failures) == 1 {
		return fmt.Sprintf("%v: %s", ErrValidationFailure, e.Failures[0].Message)
	}

	return fmt.Sprintf("%v: %s (and %d more)", ErrValidationFailure, e.Failures[0].Message, len(e.Failures)-1)
}

// Unwrap lets errors.Is match ErrValidationFailure.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailure
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}

// IsValidationFailure checks if the server rejected the request.
func IsValidationFailure(err error) bool {
	return errors.Is(err, ErrValidationFailure)
}

// IsTransport checks if the error happened while talking to the server.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsDecode checks if the error is a malformed or mismatched response body.
func IsDecode(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}
