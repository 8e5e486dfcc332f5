// SPDX-License-Identifier: MPL-2.0

package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the visual style for a rendered Table.
type TableStyle struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
	FailedStyle lipgloss.Style
}

// DefaultTableStyle returns the style every Table renders with.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("240"),
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		CellStyle:   lipgloss.NewStyle(),
		FailedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Table is a styled, row-oriented table renderer for the CLI's load-order
// and validation reports.
type Table struct {
	headers []string
	rows    [][]string
	failed  map[int]bool
	style   TableStyle
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		failed:  map[int]bool{},
		style:   DefaultTableStyle(),
	}
}

// Row appends a row. When markFailed is true the row renders in the
// style's FailedStyle, used for Failed resolver records.
func (t *Table) Row(markFailed bool, cells ...string) *Table {
	if markFailed {
		t.failed[len(t.rows)] = true
	}
	t.rows = append(t.rows, cells)
	return t
}

// String renders the table.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return t.style.HeaderStyle
			case t.failed[row]:
				return t.style.FailedStyle
			default:
				return t.style.CellStyle
			}
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}
