package tour

import "fmt"

// UnknownRoutineError is returned when a routine name does not match any
// registered demonstration.
type UnknownRoutineError struct {
	Name string
}

// Error returns the error message for UnknownRoutineError.
func (e *UnknownRoutineError) Error() string {
	return fmt.Sprintf("routine %q is not registered", e.Name)
}

// RoutineError is returned when a demonstration routine fails while running.
type RoutineError struct {
	Name  string
	Cause error
}

// Error returns the error message for RoutineError.
func (e *RoutineError) Error() string {
	return fmt.Sprintf("routine %s: %v", e.Name, e.Cause)
}

// Unwrap returns the underlying cause of the RoutineError.
func (e *RoutineError) Unwrap() error {
	return e.Cause
}
