package state

import (
	"fmt"
	"slices"
	"strings"

	"tabula/engine"
	nt "tabula/entity"
)

// ActiveData returns the rows of the current page.
func (ctl *Controller) ActiveData() []nt.Record {
	return ctl.activeData
}

// TempData returns the filtered, possibly sorted, working set.
func (ctl *Controller) TempData() []nt.Record {
	return ctl.tempData
}

// Before returns visible columns shown ahead of the actions column.
func (ctl *Controller) Before() []nt.Column {
	return ctl.before
}

// After returns visible columns shown behind the actions column.
func (ctl *Controller) After() []nt.Column {
	return ctl.after
}

// Visible returns all visible columns in display order, without actions.
func (ctl *Controller) Visible() []nt.Column {
	return append(slices.Clone(ctl.before), ctl.after...)
}

func (ctl *Controller) ShowActions() bool {
	return ctl.showActions
}

// Columns returns every column, hidden ones included.
func (ctl *Controller) Columns() []nt.Column {
	return ctl.model.Columns
}

// Model returns the normalized model.
func (ctl *Controller) Model() nt.TableModel {
	return ctl.model
}

// RowActions returns visible actions offered on each row.
func (ctl *Controller) RowActions() (acts []nt.Action) {
	for _, act := range ctl.model.Actions {
		if act.Visible() && act.Kind != nt.Add {
			acts = append(acts, act)
		}
	}
	return
}

// AddAction returns the first visible add action.
func (ctl *Controller) AddAction() (act nt.Action, ok bool) {
	for _, act = range ctl.model.Actions {
		if act.Visible() && act.Kind == nt.Add {
			ok = true
			return
		}
	}
	return
}

// Buttons returns visible toolbar buttons.
func (ctl *Controller) Buttons() (btns []nt.Button) {
	for _, btn := range ctl.model.Buttons {
		if btn.Visible() {
			btns = append(btns, btn)
		}
	}
	return
}

// Pages returns the pager's page number window.
func (ctl *Controller) Pages() engine.Window {
	return ctl.window
}

// First returns the 1-based ordinal of the first row shown, zero when empty.
func (ctl *Controller) First() int {
	return ctl.first
}

// Last returns the 1-based ordinal of the last row shown, zero when empty.
func (ctl *Controller) Last() int {
	return ctl.last
}

// Total returns the size of the working set.
func (ctl *Controller) Total() int {
	return len(ctl.tempData)
}

func (ctl *Controller) PageCount() int {
	return ctl.pageCount
}

func (ctl *Controller) PageIndex() int {
	return ctl.pageIndex
}

func (ctl *Controller) PageSize() int {
	return ctl.pageSize
}

// SortState returns the sort indicator, set from the first column before any sort is applied.
func (ctl *Controller) SortState() nt.Sort {
	return ctl.sort
}

// Sorted reports whether the working set is in SortState order.
// Filtering and loading return rows to their given order.
func (ctl *Controller) Sorted() bool {
	return ctl.sorted
}

// Needle returns the active filter text and the field it applies to,
// empty field meaning all fields.
func (ctl *Controller) Needle() (needle, field string) {
	return ctl.needle, ctl.filterField
}

// Info returns the "showing x to y of z" line.
func (ctl *Controller) Info() string {

	if len(ctl.tempData) == 0 {
		return ctl.model.Language.Format("empty")
	}
	return ctl.model.Language.Format("info", "first", ctl.first, "last", ctl.last, "total", len(ctl.tempData))
}

// Cell formats a record's value for a column.
//
// Column renderers win. Otherwise a Format applies by type: a time layout for
// dates, a printf verb for numbers and "yes|no" labels for bools. Values that
// don't convert fall back to their plain string form.
func (ctl *Controller) Cell(rec nt.Record, col nt.Column) string {

	if col.Renderer != nil {
		return col.Renderer.Render(rec, col.Field)
	}

	val := rec.Get(col.Field)
	if col.Format == "" {
		return val.String()
	}

	switch col.Type {
	case nt.Date:
		ts, err := val.Time()
		if err == nil {
			return ts.Format(col.Format)
		}
	case nt.Number:
		num, err := val.Float()
		if err == nil {
			return fmt.Sprintf(col.Format, num)
		}
	case nt.Bool:
		flag, err := val.Bool()
		if err == nil {
			yes, no, _ := strings.Cut(col.Format, "|")
			if flag {
				return yes
			}
			return no
		}
	}

	return val.String()
}
