package state

import (
	"context"
	"slices"
	"sync"

	"tabula/engine"
	nt "tabula/entity"
	"tabula/export"
	"tabula/normal"
)

// Config holds the collaborators a Controller calls out to.
// Any of them may be left nil.
type Config struct {
	Exporter export.Exporter
	Notifier nt.Notifier
	Logger   nt.Logger
}

// Controller owns the working views of one table.
type Controller struct {
	data  []nt.Record
	model nt.TableModel

	before      []nt.Column
	after       []nt.Column
	showActions bool

	sort        nt.Sort
	sorted      bool
	needle      string
	filterField string

	pageIndex int
	pageSize  int
	pageCount int
	first     int
	last      int
	window    engine.Window

	tempData   []nt.Record
	activeData []nt.Record

	exporter export.Exporter
	notifier nt.Notifier
	exports  sync.WaitGroup

	ctx    context.Context
	logger nt.Logger
}

// New normalizes the model and shows the first page of data in its given order.
// A ConfigurationError is returned for a model that cannot be shown.
func (cfg Config) New(ctx context.Context, data []nt.Record, tm nt.TableModel) (ctl *Controller, err error) {

	model, err := normal.Normalize(tm)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error(ctx, "failed to normalize table model", err)
		}
		return
	}

	ctl = &Controller{
		data:        slices.Clone(data),
		model:       model,
		showActions: true,
		sort:        nt.Sort{Field: model.Columns[0].Field},
		pageIndex:   1,
		pageSize:    model.PageSize,
		exporter:    cfg.Exporter,
		notifier:    cfg.Notifier,
		ctx:         ctx,
		logger:      cfg.Logger,
	}
	if ctl.logger == nil {
		ctl.logger = nt.NopLogger{}
	}

	ctl.partition()
	ctl.tempData = slices.Clone(ctl.data)
	ctl.recount()

	return
}

// Sort orders the working set on field.
// Sorting the current field again flips direction, a new field starts ascending.
func (ctl *Controller) Sort(field string) {

	if field == ctl.sort.Field {
		ctl.sort = ctl.sort.Flip()
	} else {
		ctl.sort = nt.Sort{Field: field}
	}

	ctl.tempData = engine.SortBy(ctl.tempData, ctl.sort)
	ctl.sorted = true
	ctl.recount()
}

// SortOn orders the working set on srt's field and direction as given.
func (ctl *Controller) SortOn(srt nt.Sort) {

	ctl.sort = srt
	ctl.tempData = engine.SortBy(ctl.tempData, ctl.sort)
	ctl.sorted = true
	ctl.recount()
}

// Search keeps records with any field containing needle.
func (ctl *Controller) Search(needle string) {

	ctl.needle = needle
	ctl.filterField = ""
	ctl.sorted = false

	ctl.tempData = engine.FilterAllFields(ctl.data, needle)
	ctl.recount()
}

// FilterColumn keeps records whose field contains needle.
func (ctl *Controller) FilterColumn(field, needle string) {

	ctl.needle = needle
	ctl.filterField = field
	ctl.sorted = false

	ctl.tempData = engine.FilterByField(ctl.data, field, needle)
	ctl.recount()
}

// GoTo shows the 1-based page index.
func (ctl *Controller) GoTo(index int) {

	ctl.pageIndex = index
	ctl.recount()
}

func (ctl *Controller) Next()      { ctl.GoTo(ctl.pageIndex + 1) }
func (ctl *Controller) Prev()      { ctl.GoTo(ctl.pageIndex - 1) }
func (ctl *Controller) FirstPage() { ctl.GoTo(1) }
func (ctl *Controller) LastPage()  { ctl.GoTo(ctl.pageCount) }

// SetPageSize changes rows per page and returns to the first page.
// Sizes other than a positive count or engine.ShowAll are ignored.
func (ctl *Controller) SetPageSize(size int) {

	if size <= 0 && size != engine.ShowAll {
		return
	}

	ctl.pageSize = size
	ctl.pageIndex = 1
	ctl.recount()
}

// ToggleColumn flips visibility of a column, or of the actions column for nt.ActionsField.
func (ctl *Controller) ToggleColumn(field string) {

	if field == nt.ActionsField {
		ctl.showActions = !ctl.showActions
		return
	}

	for i, col := range ctl.model.Columns {
		if col.Field == field {
			ctl.model.Columns[i].Hidden = !col.Hidden
			ctl.partition()
			return
		}
	}
}

// Load replaces the data, keeping the current filter, page size and page where it still exists.
// Rows show in their given order as they do after New.
func (ctl *Controller) Load(data []nt.Record) {

	ctl.data = slices.Clone(data)
	ctl.sorted = false

	if ctl.filterField == "" {
		ctl.tempData = engine.FilterAllFields(ctl.data, ctl.needle)
	} else {
		ctl.tempData = engine.FilterByField(ctl.data, ctl.filterField, ctl.needle)
	}
	ctl.recount()
}

// unexported

func (ctl *Controller) partition() {
	ctl.before, ctl.after = normal.Partition(ctl.model.Columns, *ctl.model.ActionsAt)
}

func (ctl *Controller) recount() {

	total := len(ctl.tempData)

	ctl.pageCount = engine.PageCount(total, ctl.pageSize)
	ctl.pageIndex = max(1, min(ctl.pageIndex, ctl.pageCount))

	ctl.activeData = engine.Page(ctl.tempData, ctl.pageIndex, ctl.pageSize)
	ctl.first, ctl.last = engine.Bounds(total, ctl.pageIndex, ctl.pageSize)
	ctl.window = engine.Pages(ctl.pageIndex, ctl.pageCount, ctl.model.WindowRadius)
}
