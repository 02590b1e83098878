package console

import "fmt"

// ParseError reports console input that could not be read as the expected number.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
