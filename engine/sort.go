package engine

import (
	"slices"

	nt "tabula/entity"
)

// Sort returns records ordered on field.
// Ties keep their incoming order, but nothing should rely on that.
func Sort(records []nt.Record, field string, ascending bool) []nt.Record {

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b nt.Record) int {
		cmp := a.Get(field).Compare(b.Get(field))
		if !ascending {
			return -cmp
		}
		return cmp
	})

	return sorted
}

// SortBy is Sort driven by a Sort directive.
func SortBy(records []nt.Record, srt nt.Sort) []nt.Record {
	return Sort(records, srt.Field, srt.Ascending())
}
