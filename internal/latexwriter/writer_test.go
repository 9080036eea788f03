package latexwriter

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/types"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func exampleTable() *types.Table {
	return &types.Table{
		Headers:   []string{"id", "name"},
		Rows:      [][]string{{"1", "Alice"}, {"2", "Bob"}},
		HasHeader: true,
	}
}

// bodyRows extracts the logical table lines of a rendered block: every chunk
// ending in " \\" plus newline, with leading markup lines dropped, split on
// " & " and unescaped. Cells may span source lines.
func bodyRows(t *testing.T, text string) [][]string {
	t.Helper()
	chunks := strings.Split(text, " \\\\\n")
	var rows [][]string
	for _, chunk := range chunks[:len(chunks)-1] {
		for _, prefix := range markupLines {
			for strings.HasPrefix(chunk, prefix) {
				_, chunk, _ = strings.Cut(chunk, "\n")
			}
		}
		cells := strings.Split(chunk, " & ")
		for i, cell := range cells {
			cells[i] = unescape(cell)
		}
		rows = append(rows, cells)
	}
	return rows
}

// markupLines are the prefixes of the non-row lines a block can contain, in
// the order they appear.
var markupLines = []string{
	`\begin{table}`, `\centering`, `\caption{`, `\label{`,
	`\begin{tabular}`, `\toprule`, `\midrule`, `\hline`,
}

// unescape reverses EscapeLaTeX for text without carriage returns.
func unescape(s string) string {
	words := map[string]string{
		`\textbackslash{}`:   `\`,
		`\textasciitilde{}`:  "~",
		`\textasciicircum{}`: "^",
	}

	var out strings.Builder
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], "%\n") {
			out.WriteByte('\n')
			i += 2
			continue
		}
		if s[i] != '\\' {
			out.WriteByte(s[i])
			i++
			continue
		}
		matched := false
		for word, plain := range words {
			if strings.HasPrefix(s[i:], word) {
				out.WriteString(plain)
				i += len(word)
				matched = true
				break
			}
		}
		if !matched && i+1 < len(s) {
			out.WriteByte(s[i+1])
			i += 2
		}
	}
	return out.String()
}

func csvLine(t *testing.T, cells []string) string {
	t.Helper()
	var b strings.Builder
	w := csv.NewWriter(&b)
	require.NoError(t, w.Write(cells))
	w.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

// =============================================================================
// Render Tests
// =============================================================================

func TestRender_Example(t *testing.T) {
	text, err := Render(exampleTable(), true)
	require.NoError(t, err)

	want := `\begin{tabular}{lrl}
\toprule
 & id & name \\
\midrule
0 & 1 & Alice \\
1 & 2 & Bob \\
\bottomrule
\end{tabular}
`
	assert.Equal(t, want, text)

	rows := bodyRows(t, text)
	require.Len(t, rows, 3)
	assert.Equal(t, ",id,name", csvLine(t, rows[0]))
	assert.Equal(t, "0,1,Alice", csvLine(t, rows[1]))
	assert.Equal(t, "1,2,Bob", csvLine(t, rows[2]))
}

func TestRender_WithoutIndex(t *testing.T) {
	text, err := Render(exampleTable(), false)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "\\begin{tabular}{rl}\n"))
	assert.Contains(t, text, "id & name \\\\\n")
	assert.Contains(t, text, "1 & Alice \\\\\n")
}

func TestRender_LineAndFieldCounts(t *testing.T) {
	table := &types.Table{
		Headers:   []string{"a", "b", "c"},
		HasHeader: true,
	}
	for i := 0; i < 25; i++ {
		table.Rows = append(table.Rows, []string{"x", "y", "z"})
	}

	for _, withIndex := range []bool{true, false} {
		text, err := Render(table, withIndex)
		require.NoError(t, err)

		rows := bodyRows(t, text)
		assert.Len(t, rows, table.NumRows()+1)

		wantFields := table.NumColumns()
		if withIndex {
			wantFields++
		}
		for _, row := range rows {
			assert.Len(t, row, wantFields)
		}
	}
}

func TestRender_RoundTrip(t *testing.T) {
	table := &types.Table{
		Headers:   []string{"key_name", "value %", "notes"},
		HasHeader: true,
		Rows: [][]string{
			{"a & b", "50%", "$x_1$"},
			{"{braces}", "#tag", `back\slash`},
			{"~tilde", "^caret", ""},
			{" padded ", "plain", "R&D {x}_y"},
			{"line1\nline2", "a\n\nb", "\nlead"},
			{"tail\n", " \n \n", "x"},
		},
	}

	text, err := Render(table, false)
	require.NoError(t, err)

	rows := bodyRows(t, text)
	require.Len(t, rows, len(table.Rows)+1)
	assert.Equal(t, table.Headers, rows[0])
	assert.Equal(t, table.Rows, rows[1:])
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render(exampleTable(), true)
	require.NoError(t, err)
	second, err := Render(exampleTable(), true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_RaggedTable(t *testing.T) {
	table := exampleTable()
	table.Rows = append(table.Rows, []string{"3"})

	_, err := Render(table, true)

	var parseErr *types.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestRenderWithOptions(t *testing.T) {
	t.Run("hline rules", func(t *testing.T) {
		options := DefaultRenderOptions()
		options.Booktabs = false

		text, err := RenderWithOptions(exampleTable(), options)
		require.NoError(t, err)

		assert.Equal(t, 3, strings.Count(text, "\\hline\n"))
		assert.NotContains(t, text, "\\toprule")
	})

	t.Run("table float", func(t *testing.T) {
		options := DefaultRenderOptions()
		options.Caption = "People"
		options.Label = "tab:people"
		options.Position = "htbp"

		text, err := RenderWithOptions(exampleTable(), options)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(text,
			"\\begin{table}[htbp]\n\\centering\n\\caption{People}\n\\label{tab:people}\n\\begin{tabular}{lrl}\n"))
		assert.True(t, strings.HasSuffix(text, "\\end{tabular}\n\\end{table}\n"))
	})

	t.Run("caption is escaped", func(t *testing.T) {
		options := DefaultRenderOptions()
		options.Caption = "50% growth_rate"
		options.Label = "tab:growth_rate"

		text, err := RenderWithOptions(exampleTable(), options)
		require.NoError(t, err)

		assert.Contains(t, text, "\\caption{50\\% growth\\_rate}\n")
		assert.Contains(t, text, "\\label{tab:growth_rate}\n")
	})

	t.Run("column format override", func(t *testing.T) {
		options := DefaultRenderOptions()
		options.ColumnFormat = "|c|c|c|"

		text, err := RenderWithOptions(exampleTable(), options)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(text, "\\begin{tabular}{|c|c|c|}\n"))
	})

	t.Run("na rep", func(t *testing.T) {
		table := exampleTable()
		table.Rows[1][1] = ""
		options := DefaultRenderOptions()
		options.NaRep = "--"

		text, err := RenderWithOptions(table, options)
		require.NoError(t, err)

		assert.Contains(t, text, "1 & 2 & -- \\\\\n")
	})
}

func TestRender_ColumnAlignment(t *testing.T) {
	table := &types.Table{
		Headers:   []string{"id", "name", "score", "flag"},
		HasHeader: true,
		Rows:      [][]string{{"1", "Alice", "1.5", "true"}},
	}

	text, err := Render(table, true)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "\\begin{tabular}{lrlrl}\n"))
}

// =============================================================================
// Escaping Tests
// =============================================================================

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "a & b", want: `a \& b`},
		{in: "100%", want: `100\%`},
		{in: "$5", want: `\$5`},
		{in: "#1", want: `\#1`},
		{in: "snake_case", want: `snake\_case`},
		{in: "{x}", want: `\{x\}`},
		{in: "~", want: `\textasciitilde{}`},
		{in: "^", want: `\textasciicircum{}`},
		{in: `\`, want: `\textbackslash{}`},
		{in: "two\nlines", want: "two\nlines"},
		{in: "crlf\r\nend", want: "crlf\nend"},
		{in: "lone\rcr", want: "lone cr"},
		{in: "a\n\nb", want: "a\n%\nb"},
		{in: "a\n  \nb", want: "a\n  %\nb"},
		{in: "\nlead", want: "%\nlead"},
		{in: "Ünïcödé", want: "Ünïcödé"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.in))
		})
	}
}
