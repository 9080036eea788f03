package types

import "fmt"

// =============================================================================
// ERROR KINDS
// =============================================================================
// Every failure of a conversion run is one of these three kinds. Callers
// distinguish them with errors.As; the wrapped cause is kept for the message.

// NotFoundError is returned when the input path does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError is returned when the input cannot be turned into a Table:
// inconsistent field counts, malformed quoting, empty input, or bytes that
// are not valid in the configured encoding.
type ParseError struct {
	Path string

	// Line is the 1-based line of the offending record, or 0 if unknown.
	Line int

	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError is returned when the output file cannot be created, written,
// or closed.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
