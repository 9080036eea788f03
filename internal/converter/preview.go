package converter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/types"
)

// RenderPreview prints t to w as a terminal grid. When withIndex is set the
// first column holds the same zero-based row index the LaTeX output uses.
func RenderPreview(w io.Writer, t *types.Table, withIndex bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, 0, t.NumColumns()+1)
	if withIndex {
		header = append(header, "")
	}
	for _, name := range t.Headers {
		header = append(header, name)
	}
	tw.AppendHeader(header)

	for i, values := range t.Rows {
		row := make(table.Row, 0, len(values)+1)
		if withIndex {
			row = append(row, strconv.Itoa(i))
		}
		for _, v := range values {
			row = append(row, v)
		}
		tw.AppendRow(row)
	}

	tw.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", t.NumRows())
}
