// =============================================================================
// CSV to LaTeX Converter - LaTeX Writer Module
// =============================================================================
//
// This module renders a types.Table as a LaTeX tabular block suitable for
// \input{} in a document. With the default options the output for
//
//   id,name
//   1,Alice
//   2,Bob
//
// is:
//
//   \begin{tabular}{lrl}
//   \toprule
//    & id & name \\
//   \midrule
//   0 & 1 & Alice \\
//   1 & 2 & Bob \\
//   \bottomrule
//   \end{tabular}
//
// LAYOUT RULES:
//   - The first column is the zero-based row index when IncludeRowIndex is set;
//     its header cell is empty.
//   - Numeric columns are right-aligned, everything else left-aligned.
//   - Cells are joined with " & " and every row ends with " \\".
//   - LaTeX reserved characters in cells and the caption are escaped
//     (see EscapeLaTeX).
//   - Rendering is deterministic: the same table always yields the same bytes.
//
// =============================================================================

package latexwriter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/types"
	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/validation"
)

// =============================================================================
// RENDER OPTIONS
// =============================================================================

// RenderOptions contains options for LaTeX generation.
type RenderOptions struct {
	// IncludeRowIndex prefixes a zero-based row-index column.
	// Default: true
	IncludeRowIndex bool

	// Booktabs uses \toprule/\midrule/\bottomrule. When false, \hline is used.
	// Default: true
	Booktabs bool

	// ColumnFormat replaces the inferred column specification when non-empty.
	// It must account for the index column if one is included.
	ColumnFormat string

	// Caption, when non-empty, wraps the tabular in a table float. It is
	// escaped like cell text.
	Caption string

	// Label, when non-empty, wraps the tabular in a table float and adds \label.
	// It is written as given, since labels are keys rather than text.
	Label string

	// Position is the optional float placement, e.g. "htbp".
	Position string

	// NaRep is written for empty data cells.
	// Default: "" (empty cells stay empty)
	NaRep string
}

// DefaultRenderOptions returns the default render options.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		IncludeRowIndex: true,
		Booktabs:        true,
	}
}

// =============================================================================
// RENDER FUNCTIONS
// =============================================================================

// Render produces the tabular block for table with default options.
//
// PARAMETERS:
//   - table: The table to render. It must be rectangular.
//   - includeRowIndex: Whether to prefix the row-index column.
//
// RETURNS:
//   - The LaTeX text, ending with a newline.
//   - *types.ParseError if the table violates the shape invariant.
func Render(table *types.Table, includeRowIndex bool) (string, error) {
	options := DefaultRenderOptions()
	options.IncludeRowIndex = includeRowIndex
	return RenderWithOptions(table, options)
}

// RenderWithOptions produces the tabular block with custom options.
func RenderWithOptions(table *types.Table, options RenderOptions) (string, error) {
	if err := validation.ValidateShape(table); err != nil {
		return "", err
	}

	var buffer bytes.Buffer

	float := options.Caption != "" || options.Label != ""
	if float {
		writeFloatOpen(&buffer, options)
	}

	buffer.WriteString("\\begin{tabular}{")
	buffer.WriteString(columnFormat(table, options))
	buffer.WriteString("}\n")

	buffer.WriteString(topRule(options))

	// Header row.
	header := make([]string, 0, table.NumColumns()+1)
	if options.IncludeRowIndex {
		header = append(header, "")
	}
	for _, name := range table.Headers {
		header = append(header, EscapeLaTeX(name))
	}
	writeRow(&buffer, header)

	buffer.WriteString(midRule(options))

	// Data rows.
	for i, row := range table.Rows {
		cells := make([]string, 0, len(row)+1)
		if options.IncludeRowIndex {
			cells = append(cells, strconv.Itoa(i))
		}
		for _, value := range row {
			if value == "" {
				value = options.NaRep
			}
			cells = append(cells, EscapeLaTeX(value))
		}
		writeRow(&buffer, cells)
	}

	buffer.WriteString(bottomRule(options))
	buffer.WriteString("\\end{tabular}\n")

	if float {
		buffer.WriteString("\\end{table}\n")
	}

	return buffer.String(), nil
}

// columnFormat returns the tabular column specification: "l" for the index
// and string columns, "r" for numeric columns.
func columnFormat(table *types.Table, options RenderOptions) string {
	if options.ColumnFormat != "" {
		return options.ColumnFormat
	}

	var format strings.Builder
	if options.IncludeRowIndex {
		format.WriteByte('l')
	}
	for _, kind := range validation.InferColumnKinds(table) {
		if kind.Numeric() {
			format.WriteByte('r')
		} else {
			format.WriteByte('l')
		}
	}
	return format.String()
}

// writeFloatOpen writes the table float preamble.
func writeFloatOpen(buffer *bytes.Buffer, options RenderOptions) {
	buffer.WriteString("\\begin{table}")
	if options.Position != "" {
		buffer.WriteString("[" + options.Position + "]")
	}
	buffer.WriteString("\n\\centering\n")
	if options.Caption != "" {
		buffer.WriteString("\\caption{" + EscapeLaTeX(options.Caption) + "}\n")
	}
	if options.Label != "" {
		buffer.WriteString("\\label{" + options.Label + "}\n")
	}
}

// writeRow writes one logical table line.
func writeRow(buffer *bytes.Buffer, cells []string) {
	buffer.WriteString(strings.Join(cells, " & "))
	buffer.WriteString(" \\\\\n")
}

func topRule(options RenderOptions) string {
	if options.Booktabs {
		return "\\toprule\n"
	}
	return "\\hline\n"
}

func midRule(options RenderOptions) string {
	if options.Booktabs {
		return "\\midrule\n"
	}
	return "\\hline\n"
}

func bottomRule(options RenderOptions) string {
	if options.Booktabs {
		return "\\bottomrule\n"
	}
	return "\\hline\n"
}

// =============================================================================
// ESCAPING
// =============================================================================

// EscapeLaTeX escapes LaTeX reserved characters so that s typesets literally.
//
// ESCAPES:
//   & % $ # _ { }  ->  \& \% \$ \# \_ \{ \}
//   ~              ->  \textasciitilde{}
//   ^              ->  \textasciicircum{}
//   \              ->  \textbackslash{}
//
// Newlines are kept, since LaTeX reads a single line break as a space. A
// newline that would end a blank source line is written as "%\n" instead, so
// a cell never starts a new paragraph inside a tabular row. A lone carriage
// return becomes a space.
func EscapeLaTeX(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var buffer strings.Builder
	buffer.Grow(len(s))

	// blank is true while the current source line holds only spaces and
	// tabs. The cell may follow a rule line or " & ", so it starts blank.
	blank := true

	for _, r := range s {
		switch r {
		case '&', '%', '$', '#', '_', '{', '}':
			buffer.WriteByte('\\')
			buffer.WriteRune(r)
		case '~':
			buffer.WriteString("\\textasciitilde{}")
		case '^':
			buffer.WriteString("\\textasciicircum{}")
		case '\\':
			buffer.WriteString("\\textbackslash{}")
		case '\n':
			if blank {
				buffer.WriteByte('%')
			}
			buffer.WriteByte('\n')
			blank = true
			continue
		case '\r':
			buffer.WriteByte(' ')
			continue
		case ' ', '\t':
			buffer.WriteRune(r)
			continue
		default:
			buffer.WriteRune(r)
		}
		blank = false
	}

	return buffer.String()
}
