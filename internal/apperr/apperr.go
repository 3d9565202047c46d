// Package apperr defines the error kinds the aggregate services classify.
//
// Anything not covered here is an internal fault: it propagates unmodified to
// the HTTP boundary, which maps it to a generic failure without leaking detail.
package apperr

import "fmt"

// NotFound means an operation targeted an identifier that does not exist.
// Surfaced to clients as "resource not found".
type NotFound struct {
	Entity string
	ID     int64
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// ReferenceNotFound means an identifier embedded in a relationship field of
// the input does not resolve. Distinct from NotFound: the primary target of
// the operation exists, only a reference inside it is bad. Surfaced to
// clients as "invalid input".
type ReferenceNotFound struct {
	Entity string
	ID     int64
}

func (e *ReferenceNotFound) Error() string {
	return fmt.Sprintf("referenced %s with id %d does not exist", e.Entity, e.ID)
}

// Validation means a scalar field violates a basic constraint.
// Surfaced to clients as "invalid input".
type Validation struct {
	Field  string
	Reason string
}

func (e *Validation) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
