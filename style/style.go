package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Header separator
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Row under the cursor
	HlColStyle       = lipgloss.NewStyle().Background(lipgloss.Color("234")) // Column under the cursor
	HlCellStyle      = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Cell under the cursor
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Toolbar and ellipsis
	CurrentStyle     = lipgloss.NewStyle().Bold(true).Underline(true)         // Current page in pager
	InputStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("222"))  // Text being typed, picked column
	UnStyle          = lipgloss.NewStyle()
)

// CellStyler shades the cursor's row and column in a page table.
// Headings are bold, with the cursor column shaded.
func CellStyler(cursorRow, cursorCol int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {

		inCol := col == cursorCol
		if row == table.HeaderRow {
			if inCol {
				return HlColStyle.Bold(true)
			}
			return UnStyle.Bold(true)
		}

		switch inRow := row == cursorRow; {
		case inRow && inCol:
			return HlCellStyle
		case inRow:
			return HlRowStyle
		case inCol:
			return HlColStyle
		}
		return UnStyle
	}
}

// StyleTable leaves a page table with a single rule under the headings.
func StyleTable(tbl *table.Table) {

	rule := "─"
	tbl.Border(lipgloss.Border{Top: rule, Middle: rule, MiddleLeft: rule, MiddleRight: rule}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(TableBorderStyle)
}
