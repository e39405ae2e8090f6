// file: internals/features/school/timetable_settings/service/errors.go
package service

import "fmt"

// InvalidInputError rejects a malformed building/schedule payload before any
// write happens.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Msg
}

func invalidInputf(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a failed store call. When it is returned from Save,
// the settings upsert did not run; classroom rows already created in the same
// pass are not rolled back (documented limitation: they are harmless while
// unreferenced).
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
