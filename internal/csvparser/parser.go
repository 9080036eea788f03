// =============================================================================
// CSV to LaTeX Converter - CSV Parser Module
// =============================================================================
//
// This module loads a delimited text file into a types.Table. It handles:
//   - Different delimiters (comma, pipe, tab, semicolon, any single rune)
//   - An optional header row
//   - Input encodings (see decode.go)
//   - Quoted fields, including embedded delimiters and newlines
//
// STRICTNESS:
//   Unlike a permissive reader, every record must have the same number of
//   fields as the first record. A short or long row is a ParseError that
//   names the offending line, and no table is returned.
//
// =============================================================================

package csvparser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/types"
)

// errEmpty is the cause of the ParseError returned for input with no records.
var errEmpty = errors.New("no columns to parse from file")

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Load reads a CSV file and returns the parsed table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - The parsed table.
//   - *types.NotFoundError if filePath does not exist.
//   - *types.ParseError if the content is not a well-formed table.
//
// PARSING PROCESS:
//   1. Open the file
//   2. Decode it from the configured encoding to UTF-8
//   3. Read every record, enforcing a constant field count
//   4. Split off the header row (or synthesize positional headers)
func Load(filePath string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &types.NotFoundError{Path: filePath, Err: err}
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := decode(file, settings.Encoding)
	if err != nil {
		var encErr *encodingError
		if errors.As(err, &encErr) {
			return nil, &types.ParseError{Path: filePath, Line: encErr.line, Err: err}
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	table, err := Parse(bytes.NewReader(content), settings)
	if err != nil {
		var parseErr *types.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = filePath
		}
		return nil, err
	}

	table.SourceFile = filePath
	return table, nil
}

// Parse reads already-decoded CSV text from r.
// Errors are *types.ParseError with an empty Path.
func Parse(r io.Reader, settings config.CSVSettings) (*types.Table, error) {
	csvReader := csv.NewReader(r)
	if err := configureReader(csvReader, settings); err != nil {
		return nil, &types.ParseError{Err: err}
	}

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, recordError(err)
	}

	if len(records) == 0 {
		return nil, &types.ParseError{Err: errEmpty}
	}

	table := &types.Table{HasHeader: settings.Header}
	if settings.Header {
		table.Headers = records[0]
		table.Rows = records[1:]
	} else {
		table.Headers = types.PositionalHeaders(len(records[0]))
		table.Rows = records
	}

	if table.Rows == nil {
		table.Rows = [][]string{}
	}

	return table, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) error {
	comma, err := settings.Comma()
	if err != nil {
		return err
	}
	reader.Comma = comma

	// A bare quote inside an unquoted field is kept as text.
	reader.LazyQuotes = true

	// Zero means "same count as the first record"; csv.ErrFieldCount otherwise.
	reader.FieldsPerRecord = 0
	return nil
}

// recordError converts an encoding/csv error into a ParseError, keeping the
// line number the reader reported.
func recordError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		line := csvErr.StartLine
		if line == 0 {
			line = csvErr.Line
		}
		if errors.Is(csvErr.Err, csv.ErrFieldCount) {
			return &types.ParseError{
				Line: csvErr.Line,
				Err:  fmt.Errorf("row does not have the same number of fields as the header: %w", csvErr.Err),
			}
		}
		return &types.ParseError{Line: line, Err: csvErr.Err}
	}
	return &types.ParseError{Err: err}
}
