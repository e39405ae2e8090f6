// file: internals/features/parents/service/errors.go
package service

import "fmt"

// InvalidInputError marks a request the caller can fix.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Msg
}

func invalidInputf(format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a storage failure with the operation that hit it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
