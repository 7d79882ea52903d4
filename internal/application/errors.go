// Package application contains the use-case services sitting between the
// driving HTTP adapter and the driven ports.
package application

import "fmt"

// ValidationError reports a missing required contact field. It halts the
// pipeline before any side effect and maps to a 400 response.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// PersistenceError wraps a store failure. It aborts the request before any
// mail is attempted and maps to a 500 response: the pipeline never claims
// success for a submission that was not durably stored.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store contact submission: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
