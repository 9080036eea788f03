// =============================================================================
// CSV to LaTeX Converter - Validation Engine
// =============================================================================
//
// This module checks the structural invariant of a table and infers a scalar
// kind for every column.
//
//   - Shape: every row has the same number of fields as the header row.
//   - Kinds: integer, float, boolean or string, decided from the non-empty
//     cells of a column. The LaTeX writer uses kinds for column alignment
//     only; cell text is never rewritten.
//
// Cell values are not otherwise validated. Their meaning belongs to the
// document that includes the table.
//
// =============================================================================

package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/types"
)

// =============================================================================
// SHAPE VALIDATION
// =============================================================================

// ValidateShape checks that every row of table has len(table.Headers) fields.
//
// RETURNS:
//   - nil if the table is rectangular.
//   - *types.ParseError describing the first ragged row otherwise. Line is
//     the row's line in a file with one record per line.
func ValidateShape(table *types.Table) error {
	if table == nil {
		return &types.ParseError{Err: fmt.Errorf("table is nil")}
	}
	if len(table.Headers) == 0 {
		return &types.ParseError{Path: table.SourceFile, Err: fmt.Errorf("table has no columns")}
	}

	offset := 1
	if table.HasHeader {
		offset = 2
	}

	for i, row := range table.Rows {
		if len(row) != len(table.Headers) {
			return &types.ParseError{
				Path: table.SourceFile,
				Line: i + offset,
				Err: fmt.Errorf("row %d has %d fields, expected %d",
					i, len(row), len(table.Headers)),
			}
		}
	}

	return nil
}

// =============================================================================
// KIND INFERENCE
// =============================================================================

// Kind is the scalar type inferred for a column.
type Kind int

const (
	// KindString is any column that is not entirely one of the other kinds.
	KindString Kind = iota

	// KindInteger is a column of base-10 integers.
	KindInteger

	// KindFloat is a column of decimal numbers, possibly mixed with integers.
	KindFloat

	// KindBoolean is a column of true/false values.
	KindBoolean
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// Numeric reports whether the kind is integer or float.
func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindFloat
}

// InferColumnKinds returns the kind of every column of table, in order.
func InferColumnKinds(table *types.Table) []Kind {
	kinds := make([]Kind, table.NumColumns())
	for col := range kinds {
		kinds[col] = InferKind(table.Column(col))
	}
	return kinds
}

// InferKind decides the kind of a column from its values.
//
// INFERENCE RULES:
//   - Empty cells are ignored.
//   - A column with no non-empty cells is a string column.
//   - All integers: integer.
//   - All integers or decimals: float.
//   - All true/false (any case): boolean.
//   - Anything else: string.
func InferKind(values []string) Kind {
	seen := false
	allInt, allFloat, allBool := true, true, true

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		seen = true

		if allInt && !isInteger(value) {
			allInt = false
		}
		if allFloat && !isDecimal(value) {
			allFloat = false
		}
		if allBool && !isBoolean(value) {
			allBool = false
		}

		if !allInt && !allFloat && !allBool {
			return KindString
		}
	}

	switch {
	case !seen:
		return KindString
	case allInt:
		return KindInteger
	case allFloat:
		return KindFloat
	case allBool:
		return KindBoolean
	default:
		return KindString
	}
}

// isInteger reports whether value is a valid base-10 integer.
func isInteger(value string) bool {
	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}

// isDecimal reports whether value is a valid decimal number.
// Hexadecimal and underscore-separated forms accepted by strconv are rejected.
func isDecimal(value string) bool {
	lower := strings.ToLower(strings.TrimLeft(value, "+-"))
	if strings.HasPrefix(lower, "0x") || strings.Contains(lower, "_") {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// isBoolean reports whether value is true or false in any letter case.
func isBoolean(value string) bool {
	switch strings.ToLower(value) {
	case "true", "false":
		return true
	}
	return false
}
