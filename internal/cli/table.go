package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders aligned rows with a styled header. Numeric columns should
// be pre-formatted by the caller; the table only handles layout.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given header row.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a data row. Short rows are padded with empty cells.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render produces the formatted table.
func (t *Table) Render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(t.formatRow(t.headers, widths)))
	b.WriteByte('\n')
	for _, row := range t.rows {
		b.WriteString(t.formatRow(row, widths))
		b.WriteByte('\n')
	}
	return b.String()
}

func (t *Table) formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		padded := cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		parts[i] = TableCellStyle.Render(padded)
	}
	return strings.Join(parts, "")
}
