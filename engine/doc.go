// Package engine holds the pure record-sequence operations behind a table view:
// sorting on one field, substring filtering and page slicing.
//
// Sort and the filters return fresh slices and leave their input alone, while
// Page returns a window onto the slice it is given. Callers rerun them over
// the full dataset on each change rather than patching previous results.
package engine
