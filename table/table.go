package table

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"

	nt "tabula/entity"
	"tabula/message"
	"tabula/state"
	"tabula/style"
)

const (
	headerHeight  = 2 // Header row + separator line
	toolbarHeight = 1
	actionsTitle  = "actions"
)

type inputMode int

const (
	browsing inputMode = iota
	searching
	filtering
	picking
)

// TablePanel shows the controller's current page and turns keys into transitions
type TablePanel struct {
	ctl   *state.Controller
	inbox *message.Inbox

	selected int // Row within the current page
	offset   int // First page row in view
	column   int // Index into displayed columns
	pick     int // Index into column choices while picking

	mode  inputMode
	input string
	prior string // Needle to restore when input is cancelled

	width  int
	height int

	table *table.Table

	ctx    context.Context
	logger nt.Logger
}

func NewTablePanel(ctx context.Context, ctl *state.Controller, inbox *message.Inbox, lgr nt.Logger) TablePanel {

	lgt := table.New()
	style.StyleTable(lgt)

	return TablePanel{
		ctl:    ctl,
		inbox:  inbox,
		table:  lgt,
		ctx:    ctx,
		logger: lgr,
	}
}

func (pnl TablePanel) Init() tea.Cmd {
	return nil
}

func (pnl TablePanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.scroll()

	case ResetMsg:
		pnl.ctl.Search("")
		pnl.ctl.FirstPage()
		pnl.selected = 0
		pnl.scroll()

	case tea.KeyPressMsg:
		switch pnl.mode {
		case browsing:
			return pnl.handleKey(msg)
		case picking:
			return pnl.handlePick(msg)
		}
		return pnl.handleInput(msg)
	}

	return pnl, nil
}

// Editing reports whether keys are going to a text input
func (pnl TablePanel) Editing() bool {
	return pnl.mode != browsing
}

func (pnl TablePanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render renders toolbar and table
func (pnl TablePanel) Render() string {

	cols := pnl.columns()

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = pnl.heading(col)
	}

	pnl.table.Headers(headers...)
	pnl.table.StyleFunc(style.CellStyler(pnl.selected-pnl.offset, pnl.column))

	active := pnl.ctl.ActiveData()
	end := len(active)
	if rows := pnl.visibleRows(); rows > 0 {
		end = min(end, pnl.offset+rows)
	}

	pnl.table.ClearRows()
	for _, rec := range active[min(pnl.offset, end):end] {
		pnl.table.Row(pnl.row(rec, cols)...)
	}

	if pnl.width > 0 {
		pnl.table.Width(pnl.width)
	}

	out := pnl.toolbar() + "\n" + pnl.table.String()
	if pnl.height > 0 {
		lines := strings.Split(out, "\n")
		out = strings.Join(lines[:min(len(lines), pnl.height)], "\n")
	}
	return out
}

// Selected returns the record under the cursor
func (pnl TablePanel) Selected() (rec nt.Record, ok bool) {

	active := pnl.ctl.ActiveData()
	if pnl.selected < 0 || pnl.selected >= len(active) {
		return
	}
	return active[pnl.selected], true
}

// unexported

func (pnl TablePanel) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	cols := pnl.columns()

	var status tea.Cmd
	switch msg.String() {
	case "up", "k":
		if pnl.selected > 0 {
			pnl.selected--
		}

	case "down", "j":
		if pnl.selected < len(pnl.ctl.ActiveData())-1 {
			pnl.selected++
		}

	case "left", "h":
		if pnl.column > 0 {
			pnl.column--
		}

	case "right", "l":
		if pnl.column < len(cols)-1 {
			pnl.column++
		}

	case "pgdown", "n":
		pnl.ctl.Next()
		pnl.selected = 0

	case "pgup", "p":
		pnl.ctl.Prev()
		pnl.selected = 0

	case "g":
		pnl.ctl.FirstPage()
		pnl.selected = 0

	case "G":
		pnl.ctl.LastPage()
		pnl.selected = 0

	case "]":
		pnl.ctl.SetPageSize(pnl.nextSize(1))
		pnl.selected = 0

	case "[":
		pnl.ctl.SetPageSize(pnl.nextSize(-1))
		pnl.selected = 0

	case "s":
		if col, ok := pnl.selectedColumn(); ok && col.Field != nt.ActionsField {
			pnl.ctl.Sort(col.Field)
		}

	case "/":
		pnl.prior, _ = pnl.ctl.Needle()
		pnl.mode = searching
		pnl.input = ""

	case "f":
		if col, ok := pnl.selectedColumn(); ok && col.InlineSearch && col.Searchable() {
			pnl.prior, _ = pnl.ctl.Needle()
			pnl.mode = filtering
			pnl.input = ""
		}

	case "v":
		if col, ok := pnl.selectedColumn(); ok {
			pnl.ctl.ToggleColumn(col.Field)
			pnl.column = max(0, min(pnl.column, len(pnl.columns())-1))
		}

	case "V":
		pnl.ctl.ToggleColumn(nt.ActionsField)
		pnl.column = max(0, min(pnl.column, len(pnl.columns())-1))

	case "C":
		pnl.mode = picking
		pnl.pick = 0

	case "a":
		pnl.ctl.Add()

	case "e":
		pnl.ctl.Edit(pnl.selected)

	case "d":
		pnl.ctl.Delete(pnl.selected)

	case "x":
		status = pnl.export(nt.Excel)

	case "c":
		status = pnl.export(nt.Csv)

	case "P":
		status = pnl.export(nt.Pdf)

	case "y":
		status = pnl.export(nt.Copy)
	}

	pnl.selected = max(0, min(pnl.selected, len(pnl.ctl.ActiveData())-1))
	pnl.scroll()
	return pnl, tea.Batch(status, pnl.inbox.Cmd())
}

func (pnl TablePanel) handleInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	switch key := msg.String(); key {
	case "esc":
		pnl.mode = browsing
		pnl.input = pnl.prior
		pnl.apply()
		return pnl, nil

	case "enter":
		pnl.mode = browsing
		return pnl, nil

	case "backspace":
		if len(pnl.input) > 0 {
			runes := []rune(pnl.input)
			pnl.input = string(runes[:len(runes)-1])
		}

	case "space":
		pnl.input += " "

	default:
		if len([]rune(key)) != 1 {
			return pnl, nil
		}
		pnl.input += key
	}

	pnl.apply()
	return pnl, nil
}

// apply runs the current input as a search or column filter
func (pnl *TablePanel) apply() {

	switch pnl.mode {
	case filtering:
		if col, ok := pnl.selectedColumn(); ok {
			pnl.ctl.FilterColumn(col.Field, pnl.input)
		}
	default:
		pnl.ctl.Search(pnl.input)
	}
	pnl.selected = 0
	pnl.scroll()
}

// export runs the first visible button of kind off the update loop,
// answering with a status line once it has finished
func (pnl TablePanel) export(kind nt.ButtonKind) tea.Cmd {

	for _, btn := range pnl.ctl.Buttons() {
		if btn.Kind != kind {
			continue
		}

		job, ok := pnl.ctl.Job(btn)
		if !ok {
			return nil
		}

		key := "exported"
		if kind == nt.Copy {
			key = "copied"
		}
		ctl, lang := pnl.ctl, pnl.ctl.Model().Language

		return func() tea.Msg {
			err := ctl.Run(job)
			if err != nil {
				return message.ErrorMsg{Err: err}
			}
			return message.StatusMsg{Text: lang.Format(key, "count", job.Rows)}
		}
	}
	return nil
}

// visibleRows is how many page rows fit below toolbar and header, zero when unsized
func (pnl TablePanel) visibleRows() int {

	if pnl.height <= 0 {
		return 0
	}
	return max(1, pnl.height-toolbarHeight-headerHeight)
}

// scroll keeps the selected row in view
func (pnl *TablePanel) scroll() {

	rows := pnl.visibleRows()
	if rows == 0 {
		pnl.offset = 0
		return
	}

	if pnl.selected < pnl.offset {
		pnl.offset = pnl.selected
	} else if pnl.selected >= pnl.offset+rows {
		pnl.offset = pnl.selected - rows + 1
	}
	pnl.offset = max(0, min(pnl.offset, len(pnl.ctl.ActiveData())-rows))
}

func (pnl TablePanel) nextSize(step int) int {

	sizes := pnl.ctl.Model().PageSizes
	idx := slices.Index(sizes, pnl.ctl.PageSize())
	if idx < 0 {
		return sizes[0]
	}
	return sizes[(idx+step+len(sizes))%len(sizes)]
}

// columns returns displayed columns with the actions pseudo-column in place
func (pnl TablePanel) columns() []nt.Column {

	cols := slices.Clone(pnl.ctl.Before())
	if pnl.ctl.ShowActions() && len(pnl.ctl.RowActions()) > 0 {
		title := pnl.ctl.Model().Language.Format(actionsTitle)
		cols = append(cols, nt.Column{Field: nt.ActionsField, Title: title})
	}
	return append(cols, pnl.ctl.After()...)
}

func (pnl TablePanel) selectedColumn() (col nt.Column, ok bool) {

	cols := pnl.columns()
	if pnl.column < 0 || pnl.column >= len(cols) {
		return
	}
	return cols[pnl.column], true
}

func (pnl TablePanel) heading(col nt.Column) string {

	heading := col.Heading()

	srt := pnl.ctl.SortState()
	if pnl.ctl.Sorted() && col.Field == srt.Field {
		arrow := "▲"
		if srt.Desc {
			arrow = "▼"
		}
		heading += " " + arrow
	}

	if col.Width > 0 {
		heading = fmt.Sprintf("%-*s", col.Width+1, truncate(heading, col.Width))
	}
	return heading
}

func (pnl TablePanel) row(rec nt.Record, cols []nt.Column) []string {

	row := make([]string, len(cols))
	for i, col := range cols {
		if col.Field == nt.ActionsField {
			row[i] = pnl.actions()
			continue
		}

		cell := pnl.ctl.Cell(rec, col)
		if col.Width > 0 {
			cell = truncate(cell, col.Width)
		}
		row[i] = cell
	}
	return row
}

func (pnl TablePanel) actions() string {

	var labels []string
	for _, act := range pnl.ctl.RowActions() {
		labels = append(labels, act.Content)
	}
	return strings.Join(labels, " | ")
}

func (pnl TablePanel) toolbar() string {

	if pnl.mode == picking {
		return pnl.picker()
	}

	var parts []string
	if act, ok := pnl.ctl.AddAction(); ok {
		parts = append(parts, "["+act.Content+"]")
	}
	for _, btn := range pnl.ctl.Buttons() {
		parts = append(parts, "["+btn.Content+"]")
	}

	lang := pnl.ctl.Model().Language
	needle, field := pnl.ctl.Needle()

	label := lang.Format("search")
	switch {
	case pnl.mode == filtering:
		if col, ok := pnl.selectedColumn(); ok {
			label = lang.Format("filter", "column", col.Heading())
		}
	case pnl.mode == browsing && field != "":
		heading := field
		if col, ok := pnl.ctl.Model().Field(field); ok {
			heading = col.Heading()
		}
		label = lang.Format("filter", "column", heading)
	}

	search := label + " " + needle
	if pnl.mode != browsing {
		search = label + " " + style.InputStyle.Render(pnl.input+"_")
	}

	length := lang.Format("length", "size", sizeLabel(pnl.ctl.PageSize(), lang))

	return style.MutedStyle.Render(strings.Join(parts, " ")+"  "+length+"  ") + search
}

// help

func sizeLabel(size int, lang nt.Language) string {
	if size < 0 {
		return lang.Format("all")
	}
	return fmt.Sprintf("%d", size)
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if len(runes) <= width {
		return in
	}
	if width < 1 {
		return ""
	}

	truncated := string(runes[:width-1])
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
