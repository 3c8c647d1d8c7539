package table

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "tabula/entity"
	"tabula/export"
	"tabula/message"
	"tabula/state"
)

func people() []nt.Record {
	return []nt.Record{
		{"name": "Bob", "age": 30},
		{"name": "Ann", "age": 25},
		{"name": "Cy"},
	}
}

func peopleModel() nt.TableModel {
	return nt.TableModel{
		Title: "people",
		Columns: []nt.Column{
			{Field: "name", Title: "Name", InlineSearch: true},
			{Field: "age", Title: "Age", InlineSearch: true},
		},
	}
}

func numbered(n int) []nt.Record {
	records := make([]nt.Record, n)
	for i := range records {
		records[i] = nt.Record{"id": i + 1, "label": fmt.Sprintf("row-%02d", i+1)}
	}
	return records
}

type exporter struct {
	fail error
}

func (exp exporter) Excel(ctx context.Context, sheet export.Sheet) error { return exp.fail }
func (exp exporter) Csv(ctx context.Context, sheet export.Sheet) error   { return exp.fail }
func (exp exporter) Pdf(ctx context.Context, markup, title string) error { return exp.fail }
func (exp exporter) Copy(ctx context.Context, text string) error         { return exp.fail }

func newPanel(t *testing.T, data []nt.Record, tm nt.TableModel) TablePanel {
	t.Helper()
	return exportPanel(t, data, tm, nil)
}

func exportPanel(t *testing.T, data []nt.Record, tm nt.TableModel, exp export.Exporter) TablePanel {
	t.Helper()

	inbox := &message.Inbox{}
	cfg := state.Config{Exporter: exp, Notifier: inbox}

	ctl, err := cfg.New(context.Background(), data, tm)
	require.NoError(t, err)

	return NewTablePanel(context.Background(), ctl, inbox, nt.NopLogger{})
}

func press(pnl TablePanel, keys ...string) (TablePanel, tea.Cmd) {

	var cmd tea.Cmd
	for _, key := range keys {
		var model tea.Model
		model, cmd = pnl.Update(keyMsg(key))
		pnl = model.(TablePanel)
	}
	return pnl, cmd
}

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Code: r, Text: key}
}

func names(records []nt.Record) (out []string) {
	for _, rec := range records {
		out = append(out, rec.Get("name").String())
	}
	return
}

func TestMoveCursor(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	pnl, _ = press(pnl, "j", "j", "j", "j")
	rec, ok := pnl.Selected()
	require.True(t, ok)
	assert.Equal(t, "Cy", rec.Get("name").String())

	pnl, _ = press(pnl, "k")
	rec, _ = pnl.Selected()
	assert.Equal(t, "Ann", rec.Get("name").String())

	pnl, _ = press(pnl, "l", "l", "l", "l")
	col, ok := pnl.selectedColumn()
	require.True(t, ok)
	assert.Equal(t, nt.ActionsField, col.Field)
}

func TestSortKey(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	pnl, _ = press(pnl, "s")
	assert.Equal(t, []string{"Cy", "Bob", "Ann"}, names(pnl.ctl.ActiveData()))

	pnl, _ = press(pnl, "l", "s")
	assert.Equal(t, []string{"Cy", "Ann", "Bob"}, names(pnl.ctl.ActiveData()))
	assert.Equal(t, nt.Sort{Field: "age"}, pnl.ctl.SortState())
}

func TestSortKey_IgnoresActions(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	pnl, _ = press(pnl, "l", "l", "s")
	assert.Equal(t, "name", pnl.ctl.SortState().Field)
}

func TestSearch(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	pnl, _ = press(pnl, "/", "a", "n")
	assert.True(t, pnl.Editing())
	assert.Equal(t, []string{"Ann"}, names(pnl.ctl.ActiveData()))

	pnl, _ = press(pnl, "backspace")
	assert.Equal(t, []string{"Ann"}, names(pnl.ctl.ActiveData()))

	pnl, _ = press(pnl, "enter")
	assert.False(t, pnl.Editing())

	needle, field := pnl.ctl.Needle()
	assert.Equal(t, "a", needle)
	assert.Equal(t, "", field)
}

func TestSearch_EscapeRestores(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	pnl, _ = press(pnl, "/", "b", "o", "esc")
	assert.False(t, pnl.Editing())
	assert.Equal(t, []string{"Bob", "Ann", "Cy"}, names(pnl.ctl.ActiveData()))
}

func TestFilterColumn(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	pnl, _ = press(pnl, "f", "c", "enter")
	assert.Equal(t, []string{"Cy"}, names(pnl.ctl.ActiveData()))

	needle, field := pnl.ctl.Needle()
	assert.Equal(t, "c", needle)
	assert.Equal(t, "name", field)
}

func TestPaging(t *testing.T) {

	pnl := newPanel(t, numbered(25), nt.TableModel{
		Columns: []nt.Column{{Field: "id"}, {Field: "label"}},
	})

	pnl, _ = press(pnl, "pgdown")
	assert.Equal(t, 2, pnl.ctl.PageIndex())

	pnl, _ = press(pnl, "G")
	assert.Equal(t, 3, pnl.ctl.PageIndex())
	assert.Len(t, pnl.ctl.ActiveData(), 5)

	pnl, _ = press(pnl, "j", "j", "j", "j", "j", "j")
	assert.Equal(t, 4, pnl.selected)

	pnl, _ = press(pnl, "g")
	assert.Equal(t, 1, pnl.ctl.PageIndex())
	assert.Equal(t, 0, pnl.selected)
}

func TestPageSizeCycle(t *testing.T) {

	pnl := newPanel(t, numbered(25), nt.TableModel{
		Columns: []nt.Column{{Field: "id"}, {Field: "label"}},
	})

	pnl, _ = press(pnl, "]")
	assert.Equal(t, 25, pnl.ctl.PageSize())
	assert.Equal(t, 1, pnl.ctl.PageCount())

	pnl, _ = press(pnl, "[", "[")
	assert.Equal(t, -1, pnl.ctl.PageSize())
	assert.Len(t, pnl.ctl.ActiveData(), 25)
}

func TestToggleVisibility(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	pnl, _ = press(pnl, "v")
	assert.Equal(t, []string{"age", nt.ActionsField}, fields(pnl.columns()))

	pnl, _ = press(pnl, "V")
	assert.Equal(t, []string{"age"}, fields(pnl.columns()))
}

func TestActionKeys(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	_, cmd := press(pnl, "j")
	assert.Nil(t, cmd)

	_, cmd = press(pnl, "e")
	assert.NotNil(t, cmd)

	_, cmd = press(pnl, "a")
	assert.NotNil(t, cmd)
}

func TestReset(t *testing.T) {

	pnl := newPanel(t, numbered(25), nt.TableModel{
		Columns: []nt.Column{{Field: "id"}, {Field: "label"}},
	})

	pnl, _ = press(pnl, "/", "1", "enter", "n")
	model, _ := pnl.Update(ResetMsg{})
	pnl = model.(TablePanel)

	needle, _ := pnl.ctl.Needle()
	assert.Equal(t, "", needle)
	assert.Equal(t, 1, pnl.ctl.PageIndex())
	assert.Equal(t, 25, pnl.ctl.Total())
}

func TestRender(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())
	model, _ := pnl.Update(SizeMsg{Width: 80, Height: 20})
	pnl = model.(TablePanel)

	out := pnl.Render()
	assert.NotContains(t, out, "▲")
	assert.Contains(t, out, "Age")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "[+ New]")
	assert.Contains(t, out, "Show 10 entries")
	assert.Contains(t, out, "Edit | Delete")

	pnl, _ = press(pnl, "s")
	assert.Contains(t, pnl.Render(), "Name ▼")
}

func TestRender_FitsHeight(t *testing.T) {

	pnl := newPanel(t, numbered(30), nt.TableModel{
		Columns: []nt.Column{{Field: "id"}, {Field: "label"}},
	})
	model, _ := pnl.Update(SizeMsg{Width: 80, Height: 8})
	pnl = model.(TablePanel)

	pnl, _ = press(pnl, "]")
	require.Equal(t, 25, pnl.ctl.PageSize())

	for range 12 {
		pnl, _ = press(pnl, "j")
	}

	out := pnl.Render()
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 8)
	assert.Contains(t, out, "row-13")
	assert.NotContains(t, out, "row-01")

	pnl, _ = press(pnl, "g")
	out = pnl.Render()
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 8)
	assert.Contains(t, out, "row-01")
	assert.NotContains(t, out, "row-13")
}

func TestTruncate(t *testing.T) {

	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "", truncate("abc", 0))
	assert.Contains(t, truncate("abcdef", 3), "ab")
}

func fields(cols []nt.Column) (out []string) {
	for _, col := range cols {
		out = append(out, col.Field)
	}
	return
}

func TestExportKey_Status(t *testing.T) {

	pnl := exportPanel(t, people(), peopleModel(), exporter{})

	_, cmd := press(pnl, "/", "b", "enter", "c")
	require.NotNil(t, cmd)

	msg, ok := cmd().(message.StatusMsg)
	require.True(t, ok)
	assert.Equal(t, "Exported 3 rows", msg.Text)
}

func TestExportKey_Failure(t *testing.T) {

	pnl := exportPanel(t, people(), peopleModel(), exporter{fail: errors.New("disk full")})

	_, cmd := press(pnl, "x")
	require.NotNil(t, cmd)

	msg, ok := cmd().(message.ErrorMsg)
	require.True(t, ok)
	assert.ErrorContains(t, msg.Err, "disk full")
}

func TestExportKey_NoExporter(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	_, cmd := press(pnl, "c")
	assert.Nil(t, cmd)
}

func TestFilterKey_NeedsInlineSearch(t *testing.T) {

	tm := peopleModel()
	tm.Columns[0].InlineSearch = false
	pnl := newPanel(t, people(), tm)

	pnl, _ = press(pnl, "f")
	assert.False(t, pnl.Editing())

	pnl, _ = press(pnl, "l", "f")
	assert.True(t, pnl.Editing())
}

func TestColumnPicker_Restores(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	pnl, _ = press(pnl, "v")
	require.Equal(t, []string{"age", nt.ActionsField}, fields(pnl.columns()))

	pnl, _ = press(pnl, "C")
	assert.True(t, pnl.Editing())
	assert.Contains(t, pnl.toolbar(), "Columns:")
	assert.Contains(t, pnl.toolbar(), "[ ] Name")
	assert.Contains(t, pnl.toolbar(), "[x] Age")

	pnl, _ = press(pnl, "space", "enter")
	assert.False(t, pnl.Editing())
	assert.Equal(t, []string{"name", "age", nt.ActionsField}, fields(pnl.columns()))
}

func TestColumnPicker_Actions(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())

	pnl, _ = press(pnl, "C", "l", "l", "l", "l", "x")
	assert.False(t, pnl.ctl.ShowActions())
	assert.Contains(t, pnl.toolbar(), "[ ] Actions")

	pnl, _ = press(pnl, "x", "esc")
	assert.True(t, pnl.ctl.ShowActions())
	assert.False(t, pnl.Editing())
}

func TestToolbar_FilterLabel(t *testing.T) {

	pnl := newPanel(t, people(), peopleModel())
	assert.Contains(t, pnl.toolbar(), "Search:")

	pnl, _ = press(pnl, "l", "f", "3", "enter")
	assert.Contains(t, pnl.toolbar(), "Filter Age: 3")
}
