// Package parsererror defines the typed errors returned by the bill parser,
// the extractor and the command layer.
package parsererror

import (
	"fmt"
	"strings"
)

// ParseError represents a field that could not be parsed, such as a
// non-integer minutes column.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: failed to parse %s='%s' on line %d: %v",
			e.Parser, e.Field, e.Value, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidInputError reports a path that is not a readable file or directory.
type InvalidInputError struct {
	Path   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Path, e.Reason)
}

// UsageError is returned for wrong command-line arguments. Lines are printed
// to standard output as-is and the process exits with ExitCode.
type UsageError struct {
	Lines    []string
	ExitCode int
}

func (e *UsageError) Error() string {
	return strings.Join(e.Lines, "\n")
}
