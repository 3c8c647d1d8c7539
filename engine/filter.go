package engine

import (
	"slices"

	nt "tabula/entity"
)

// FilterByField keeps records whose field contains needle, ignoring case.
// An absent field reads as the empty string.
func FilterByField(records []nt.Record, field, needle string) []nt.Record {

	if needle == "" {
		return slices.Clone(records)
	}

	kept := []nt.Record{}
	for _, rec := range records {
		if rec.Get(field).Contains(needle) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// FilterAllFields keeps records where any field contains needle, ignoring case.
func FilterAllFields(records []nt.Record, needle string) []nt.Record {

	if needle == "" {
		return slices.Clone(records)
	}

	kept := []nt.Record{}
	for _, rec := range records {
		for field := range rec {
			if rec.Get(field).Contains(needle) {
				kept = append(kept, rec)
				break
			}
		}
	}
	return kept
}
