package query

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrEmptyIdentifier   = errors.New("identifier is empty")
	ErrInvalidTypeName   = errors.New("invalid type name")
	ErrUnknownFilter     = errors.New("unknown filter")
	ErrInvalidFilter     = errors.New("invalid filter value")
	ErrUnknownFacet      = errors.New("unknown facet")
	ErrUnknownField      = errors.New("unknown query field")
	ErrInvalidFacetCount = errors.New("facet count must be a positive number or *")
	ErrUnknownSort       = errors.New("unknown sort key")
	ErrUnknownOrder      = errors.New("unknown sort order")
	ErrInvalidRequest    = errors.New("request has no route")
	ErrNotWorksListRoute = errors.New("request does not target a list of works")
)

// RouteError reports a request or option that cannot be turned into a route.
type RouteError struct {
	Op    string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *RouteError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %q: %v", e.Op, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RouteError) Unwrap() error {
	return e.Err
}
