package filterdsl

import "fmt"

// ParseError is returned when a filter expression cannot be parsed or
// compiled.
type ParseError struct {
	Input   string
	Message string
	Cause   error
}

// Error returns the error message for ParseError.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("filterdsl: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("filterdsl: %s", e.Message)
}

// Unwrap returns the underlying cause of the ParseError.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// InvalidFieldError is returned when a field name is not a plain SQL
// identifier and therefore cannot be spliced into a clause.
type InvalidFieldError struct {
	Field string
}

// Error returns the error message for InvalidFieldError.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("filterdsl: %q is not a valid field name", e.Field)
}
