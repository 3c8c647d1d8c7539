// Package state holds the table controller, the single owner of a table's
// working views.
//
// A Controller keeps the caller's records untouched and derives two views
// from them: the filtered (and possibly sorted) working set, and the page of
// it currently shown. Every transition recomputes the page, its ordinals and
// the pager window before returning, so accessors always agree with each
// other.
//
// Free text and column filters always start over from the full dataset and
// drop any sort; a column filter replaces the previous one rather than
// narrowing it. Sorting works on the current working set. Changing the page
// size returns to the first page, other transitions keep the page index but
// pull it back inside the page count when the working set shrinks.
//
// Transitions never fail. Unknown fields, out of range rows and bad page
// sizes leave the state as it was or yield empty results.
package state
