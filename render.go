package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-sif/table/coerce"
)

const (
	// DefaultMaxRows is the number of rows rendered when no positive limit is given
	DefaultMaxRows  = 20
	// MaxColumnWidth is the widest a rendered column may be, in characters
	MaxColumnWidth  = 30
	// AbsentMarker is how absent cells are rendered
	AbsentMarker    = "None"
	columnSeparator = " | "
)

// Render writes up to maxRows rows of this Table to w as left-justified, fixed-width
// columns beneath a header. Cells are cut off at MaxColumnWidth characters, and any
// rows beyond the limit are counted in a footer. Absent cells render as AbsentMarker.
// A maxRows value <= 0 uses DefaultMaxRows rather than rendering no rows.
func (t *Table) Render(w io.Writer, maxRows int) error {
	_, err := io.WriteString(w, t.render(maxRows))
	return err
}

// Print renders this Table to standard output
func (t *Table) Print(maxRows int) error {
	return t.Render(os.Stdout, maxRows)
}

func (t *Table) render(maxRows int) string {
	if t.NumRows() == 0 {
		return "Empty table\n"
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	limit := maxRows
	if limit > t.NumRows() {
		limit = t.NumRows()
	}
	columns := t.ColumnNames()
	cells := make([][]string, limit)
	for j := range cells {
		row := t.row(j)
		cells[j] = make([]string, len(columns))
		for i := range columns {
			cells[j][i] = renderCell(row[i])
		}
	}
	widths := make([]int, len(columns))
	for i, col := range columns {
		width := utf8.RuneCountInString(col)
		for j := range cells {
			if w := utf8.RuneCountInString(cells[j][i]); w > width {
				width = w
			}
		}
		if width > MaxColumnWidth {
			width = MaxColumnWidth
		}
		widths[i] = width
	}

	var res strings.Builder
	parts := make([]string, len(columns))
	for i, col := range columns {
		// headers are padded, but never cut off
		parts[i] = padRight(col, widths[i])
	}
	header := strings.Join(parts, columnSeparator)
	fmt.Fprintln(&res, header)
	fmt.Fprintln(&res, strings.Repeat("-", utf8.RuneCountInString(header)))
	for j := range cells {
		for i := range columns {
			parts[i] = padRight(truncateRunes(cells[j][i], MaxColumnWidth), widths[i])
		}
		fmt.Fprintln(&res, strings.Join(parts, columnSeparator))
	}
	if t.NumRows() > limit {
		fmt.Fprintf(&res, "... and %d more rows\n", t.NumRows()-limit)
	}
	return res.String()
}

func renderCell(v interface{}) string {
	if v == nil {
		return AbsentMarker
	}
	return coerce.Format(v)
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
