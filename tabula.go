// Package tabula shows records as a sortable, filterable, paged table in the terminal.
package tabula

import (
	"context"

	"github.com/pkg/errors"

	nt "tabula/entity"
	"tabula/export"
	"tabula/message"
	"tabula/state"
)

// Source specifies where records come from.
type Source interface {
	// Name returns the name of the data source
	Name() string
	// Load a file
	Load(ctx context.Context, path string) (err error)
	// Records returns query results, everything loaded for an empty query
	Records(ctx context.Context, query string) (records []nt.Record, err error)
}

// Config holds the layout a Tabula is built from.
type Config struct {
	Layout *Layout
}

// Tabula is a loaded table ready to show.
type Tabula struct {
	Controller *state.Controller
	Inbox      *message.Inbox

	source Source
	layout *Layout
	logger nt.Logger
}

// New loads path (or the layout's source) and builds a controller over it.
func (cfg *Config) New(ctx context.Context, src Source, path string, lgr nt.Logger) (tbl *Tabula, err error) {

	layout := cfg.Layout
	if layout == nil {
		err = errors.New("no layout")
		return
	}

	if path == "" {
		path = layout.Source
	}

	err = src.Load(ctx, path)
	if err != nil {
		return
	}

	records, err := src.Records(ctx, layout.Query)
	if err != nil {
		return
	}

	inbox := &message.Inbox{}
	stateCfg := state.Config{
		Exporter: export.Files{Dir: layout.ExportDir},
		Notifier: inbox,
		Logger:   lgr,
	}

	ctl, err := stateCfg.New(ctx, records, layout.Table)
	if err != nil {
		return
	}

	lgr.Info(ctx, "table ready", "source", src.Name(), "records", len(records))

	tbl = &Tabula{
		Controller: ctl,
		Inbox:      inbox,
		source:     src,
		layout:     layout,
		logger:     lgr,
	}
	return
}

// Model returns the bubbletea model for the table.
func (tbl *Tabula) Model(ctx context.Context) Model {
	return NewModel(ctx, tbl.Controller, tbl.Inbox, tbl.source, tbl.layout.Query, tbl.logger)
}
