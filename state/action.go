package state

import (
	"context"

	nt "tabula/entity"
	"tabula/export"
)

// Add tells the host a new record was asked for.
func (ctl *Controller) Add() {
	ctl.notify(nt.Notice{Kind: nt.Add, Name: string(nt.Add)})
}

// Edit tells the host the record at row of the current page is to be edited.
func (ctl *Controller) Edit(row int) {
	ctl.notifyRow(nt.Edit, string(nt.Edit), row)
}

// Delete tells the host the record at row of the current page is to be deleted.
func (ctl *Controller) Delete(row int) {
	ctl.notifyRow(nt.Delete, string(nt.Delete), row)
}

// Custom tells the host a named custom action was clicked on row.
func (ctl *Controller) Custom(name string, row int) {
	ctl.notifyRow(nt.Custom, name, row)
}

// Press handles a toolbar button.
//
// Export buttons hand a snapshot of the full dataset, visible columns only,
// to the exporter and return without waiting. Colvis is left to the host and
// custom buttons are passed on as notices.
func (ctl *Controller) Press(btn nt.Button) {

	switch btn.Kind {
	case nt.Excel, nt.Csv, nt.Pdf, nt.Copy:
		job, ok := ctl.Job(btn)
		if ok {
			ctl.exports.Go(func() { job.run(ctl.ctx, ctl.logger) })
		}
	case nt.CustomButton:
		ctl.notify(nt.Notice{Kind: nt.Custom, Name: btn.Name})
	}
}

// Job is an export snapshotted when it was made, ready to run anywhere.
type Job struct {
	Kind  nt.ButtonKind
	Title string
	Rows  int

	exec func(ctx context.Context) error
}

// Job snapshots the export for btn.
// Not ok for buttons that don't export or when there is no exporter.
func (ctl *Controller) Job(btn nt.Button) (job Job, ok bool) {

	if ctl.exporter == nil {
		ctl.logger.Info(ctl.ctx, "no exporter, ignoring button", "kind", btn.Kind)
		return
	}

	title := btn.Title
	if title == "" {
		title = ctl.model.Title
	}
	sheet := export.Snapshot(title, ctl.data, ctl.model.Columns)

	exporter := ctl.exporter
	job = Job{Kind: btn.Kind, Title: title, Rows: len(sheet.Rows)}

	switch btn.Kind {
	case nt.Excel:
		job.exec = func(ctx context.Context) error { return exporter.Excel(ctx, sheet) }
	case nt.Csv:
		job.exec = func(ctx context.Context) error { return exporter.Csv(ctx, sheet) }
	case nt.Pdf:
		markup := export.Markup(sheet)
		job.exec = func(ctx context.Context) error { return exporter.Pdf(ctx, markup, title) }
	case nt.Copy:
		text := export.Text(sheet)
		job.exec = func(ctx context.Context) error { return exporter.Copy(ctx, text) }
	default:
		return
	}

	ok = true
	return
}

// Run runs job to completion, counted among the exports Wait joins.
// Safe to call from another goroutine.
func (ctl *Controller) Run(job Job) (err error) {

	ctl.exports.Add(1)
	defer ctl.exports.Done()

	return job.run(ctl.ctx, ctl.logger)
}

// Wait blocks until exports in flight have finished.
func (ctl *Controller) Wait() {
	ctl.exports.Wait()
}

// unexported

func (ctl *Controller) notify(notice nt.Notice) {

	if ctl.notifier == nil {
		return
	}
	ctl.notifier.Notify(ctl.ctx, notice)
}

func (ctl *Controller) notifyRow(kind nt.ActionKind, name string, row int) {

	if row < 0 || row >= len(ctl.activeData) {
		return
	}
	ctl.notify(nt.Notice{Kind: kind, Name: name, Record: ctl.activeData[row]})
}

func (job Job) run(ctx context.Context, logger nt.Logger) (err error) {

	err = job.exec(ctx)
	if err != nil {
		logger.Error(ctx, "failed to export", err, "kind", job.Kind, "title", job.Title)
		return
	}

	logger.Info(ctx, "exported", "kind", job.Kind, "title", job.Title, "rows", job.Rows)
	return
}
