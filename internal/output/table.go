package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorDimGray)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	tableDashStyle   = StyleDim
)

// Table collects rows for a bordered lipgloss table.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// Row appends a row. Empty cells render as a dimmed "-".
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// String renders the table.
func (t *Table) String() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return lipgloss.NewStyle()
		})

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, c := range row {
			if c == "" {
				c = tableDashStyle.Render("-")
			}
			cells[i] = c
		}
		tbl.Row(cells...)
	}

	return tbl.String()
}

// RenderKeyValueTable renders keys and their values as a two column table,
// in the order keys are given.
func RenderKeyValueTable(keyHeader, valueHeader string, keys []string, values map[string]string) string {
	tbl := NewTable(keyHeader, valueHeader)
	for _, k := range keys {
		tbl.Row(k, values[k])
	}
	return tbl.String()
}
