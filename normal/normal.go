// Package normal fills a caller's table model in with built-in defaults.
//
// Actions and buttons supplied by the caller are kept and the defaults are
// appended after them, while language strings are merged with the caller's
// entries winning. The caller's model is never modified.
package normal

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pkg/errors"

	"tabula/engine"
	nt "tabula/entity"
)

const (
	DefaultPageSize = 10
)

var (
	DefaultPageSizes = []int{10, 25, 50, 100, engine.ShowAll}

	DefaultActions = []nt.Action{
		{Kind: nt.Add, Name: "add", Content: "+ New"},
		{Kind: nt.Edit, Name: "edit", Content: "Edit"},
		{Kind: nt.Delete, Name: "delete", Content: "Delete"},
	}

	DefaultButtons = []nt.Button{
		{Kind: nt.Excel, Name: "excel", Content: "Excel"},
		{Kind: nt.Pdf, Name: "pdf", Content: "PDF"},
		{Kind: nt.Csv, Name: "csv", Content: "CSV"},
		{Kind: nt.Copy, Name: "copy", Content: "Copy"},
		{Kind: nt.Colvis, Name: "colvis", Content: "Columns"},
	}

	DefaultLanguage = nt.Language{
		"search":   "Search:",
		"filter":   "Filter {column}:",
		"length":   "Show {size} entries",
		"all":      "All",
		"info":     "Showing {first} to {last} of {total} entries",
		"empty":    "No data available in table",
		"first":    "First",
		"previous": "Previous",
		"next":     "Next",
		"last":     "Last",
		"actions":  "Actions",
		"copied":   "Copied {count} rows to clipboard",
		"exported": "Exported {count} rows",
	}
)

// ConfigurationError reports a model that cannot be shown.
type ConfigurationError struct {
	Reason string
}

func (ce *ConfigurationError) Error() string {
	return fmt.Sprintf("bad table configuration: %s", ce.Reason)
}

// IsConfiguration reports whether err is or wraps a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// Normalize returns a copy of tm with defaults filled in.
func Normalize(tm nt.TableModel) (out nt.TableModel, err error) {

	if len(tm.Columns) == 0 {
		err = &ConfigurationError{Reason: "no columns"}
		return
	}

	at := len(tm.Columns)
	if tm.ActionsAt != nil {
		at = *tm.ActionsAt
	}
	if at < 0 || at > len(tm.Columns) {
		err = &ConfigurationError{
			Reason: fmt.Sprintf("actions column at %d is outside 0..%d", at, len(tm.Columns)),
		}
		return
	}

	if tm.PageSize != 0 && !validSize(tm.PageSize) {
		err = &ConfigurationError{Reason: fmt.Sprintf("page size %d is neither positive nor %d", tm.PageSize, engine.ShowAll)}
		return
	}
	for _, size := range tm.PageSizes {
		if !validSize(size) {
			err = &ConfigurationError{Reason: fmt.Sprintf("page sizes hold %d, neither positive nor %d", size, engine.ShowAll)}
			return
		}
	}

	out = tm
	out.Columns = slices.Clone(tm.Columns)
	out.ActionsAt = &at
	out.Actions = append(slices.Clone(tm.Actions), DefaultActions...)
	out.Buttons = append(slices.Clone(tm.Buttons), DefaultButtons...)

	out.Language = maps.Clone(DefaultLanguage)
	maps.Copy(out.Language, tm.Language)

	if out.PageSize == 0 {
		out.PageSize = DefaultPageSize
	}
	if len(out.PageSizes) == 0 {
		out.PageSizes = DefaultPageSizes
	}
	out.PageSizes = slices.Clone(out.PageSizes)
	if out.WindowRadius < 1 {
		out.WindowRadius = engine.DefaultRadius
	}

	return
}

func validSize(size int) bool {
	return size > 0 || size == engine.ShowAll
}

// Partition splits the visible columns either side of the actions column.
func Partition(columns []nt.Column, at int) (before, after []nt.Column) {

	at = max(0, min(at, len(columns)))

	for i, col := range columns {
		if !col.Visible() {
			continue
		}
		if i < at {
			before = append(before, col)
		} else {
			after = append(after, col)
		}
	}
	return
}
