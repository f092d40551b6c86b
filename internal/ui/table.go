package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders command output as space-aligned columns without borders.
// Cells may contain styled text; widths are measured with lipgloss so ANSI
// sequences don't skew alignment. An optional muted header row and a count
// footer cover the common list-command shape.
type Table struct {
	header     []string
	rows       [][]string
	colWidths  []int
	colPadding int
	footer     string
}

// NewTable creates a table with the given number of columns.
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colPadding: 2,
	}
}

// SetHeader sets a header row, rendered muted above the data rows.
func (t *Table) SetHeader(cells ...string) {
	t.header = t.fit(cells)
}

// AddRow appends a data row. Extra cells beyond the column count are dropped.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, t.fit(cells))
}

// SetPadding sets the spacing between columns.
func (t *Table) SetPadding(padding int) {
	t.colPadding = padding
}

// SetCount sets a footer line of the form "3 results", pluralized and
// rendered as a hint below the rows.
func (t *Table) SetCount(n int, singular, plural string) {
	t.footer = Count(n, singular, plural)
}

func (t *Table) fit(cells []string) []string {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if w := lipgloss.Width(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	return row
}

// String renders the table. An empty table renders as nothing, footer
// included.
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if t.header != nil {
		styled := make([]string, len(t.header))
		for i, cell := range t.header {
			styled[i] = Muted.Render(cell)
		}
		t.writeRow(&sb, styled)
	}
	for _, row := range t.rows {
		t.writeRow(&sb, row)
	}
	if t.footer != "" {
		sb.WriteString(Hint(t.footer))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Table) writeRow(sb *strings.Builder, row []string) {
	padding := strings.Repeat(" ", t.colPadding)
	for i, cell := range row {
		if i > 0 {
			sb.WriteString(padding)
		}
		sb.WriteString(cell)
		// Last column stays ragged so trailing spaces never wrap.
		if i < len(row)-1 {
			sb.WriteString(strings.Repeat(" ", t.colWidths[i]-lipgloss.Width(cell)))
		}
	}
	sb.WriteString("\n")
}
