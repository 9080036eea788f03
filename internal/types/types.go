// =============================================================================
// CSV to LaTeX Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - validation
//   - latexwriter
//   - converter
//
// =============================================================================

package types

import "strconv"

// =============================================================================
// TABLE
// =============================================================================

// Table is the in-memory row/column structure parsed from delimited text.
//
// Every row in Rows has exactly len(Headers) fields. The parser enforces this
// and reports a ParseError otherwise.
type Table struct {
	// Headers contains the column names.
	// When the input has no header row these are the column positions
	// "0", "1", ... so that every column still has a name.
	Headers []string

	// Rows contains the data rows in file order. Header rows are not included.
	Rows [][]string

	// HasHeader reports whether Headers came from the first row of the file.
	HasHeader bool

	// SourceFile is the path the table was loaded from.
	SourceFile string
}

// NumColumns returns the number of columns in the table.
func (t *Table) NumColumns() int {
	return len(t.Headers)
}

// NumRows returns the number of data rows (excluding the header row).
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Column returns every value of the column at index col.
// It returns nil if col is out of range.
func (t *Table) Column(col int) []string {
	if col < 0 || col >= len(t.Headers) {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[col]
	}
	return values
}

// PositionalHeaders returns "0".."n-1", the column names used when a file
// has no header row.
func PositionalHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = strconv.Itoa(i)
	}
	return headers
}
