// Package export turns a table's data into files and clipboard text.
package export

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	nt "tabula/entity"
)

// Exporter specifies the export collaborators a table hands its data to.
type Exporter interface {
	// Excel writes a spreadsheet
	Excel(ctx context.Context, sheet Sheet) (err error)
	// Csv writes comma separated values
	Csv(ctx context.Context, sheet Sheet) (err error)
	// Pdf prints pre-rendered markup
	Pdf(ctx context.Context, markup, title string) (err error)
	// Copy puts text on the clipboard
	Copy(ctx context.Context, text string) (err error)
}

// Sheet is a materialized table keyed by column heading.
type Sheet struct {
	Title   string
	Headers []string
	Rows    []nt.Record
}

// Snapshot reshapes records so keys are the headings of visible columns.
// Fields without a visible column are dropped. A repeated heading gets a
// numeric suffix, "Name (2)", so each column keeps its own key.
func Snapshot(title string, records []nt.Record, columns []nt.Column) Sheet {

	sheet := Sheet{
		Title: title,
		Rows:  make([]nt.Record, 0, len(records)),
	}

	visible := []nt.Column{}
	for _, col := range columns {
		if col.Visible() {
			visible = append(visible, col)
		}
	}
	sheet.Headers = headers(visible)

	for _, rec := range records {
		row := nt.Record{}
		for i, col := range visible {
			if val, ok := rec[col.Field]; ok {
				row[sheet.Headers[i]] = val
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet
}

// Cells returns the rows as strings in header order.
func (sheet Sheet) Cells() [][]string {

	cells := make([][]string, len(sheet.Rows))
	for i, row := range sheet.Rows {
		cells[i] = make([]string, len(sheet.Headers))
		for j, header := range sheet.Headers {
			cells[i][j] = row.Get(header).String()
		}
	}
	return cells
}

// Markup renders the sheet as a plain ascii grid.
func Markup(sheet Sheet) string {

	tbl := table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers(sheet.Headers...)

	for _, row := range sheet.Cells() {
		tbl.Row(row...)
	}

	return tbl.String()
}

// Text renders the sheet as tab separated lines.
func Text(sheet Sheet) string {

	lines := []string{strings.Join(sheet.Headers, "\t")}
	for _, row := range sheet.Cells() {
		lines = append(lines, strings.Join(row, "\t"))
	}

	return strings.Join(lines, "\n")
}

// headers are the column headings made unique
func headers(columns []nt.Column) []string {

	taken := map[string]bool{}
	for _, col := range columns {
		taken[col.Heading()] = true
	}

	seen := map[string]int{}
	out := make([]string, len(columns))
	for i, col := range columns {
		heading := col.Heading()
		seen[heading]++
		if seen[heading] == 1 {
			out[i] = heading
			continue
		}

		for n := seen[heading]; ; n++ {
			unique := fmt.Sprintf("%s (%d)", heading, n)
			if !taken[unique] {
				taken[unique] = true
				seen[heading] = n
				out[i] = unique
				break
			}
		}
	}
	return out
}
