// Package parsererror defines the typed errors surfaced by statement parsing.
package parsererror

import "fmt"

// ParseError represents a failure to parse a single field of a statement row.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input that does not conform to the expected
// statement format at all. A statement with skippable bad rows is not invalid;
// this error is reserved for input the parser cannot recognize (wrong encoding,
// missing header, binary garbage).
type InvalidFormatError struct {
	Parser         string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: invalid statement format: %s (expected %s)",
		e.Parser, e.Msg, e.ExpectedFormat)
}
