package engine

import nt "tabula/entity"

const (
	// ShowAll is the page size meaning "no paging".
	ShowAll = -1
	// DefaultRadius is the page window radius used when none is given.
	DefaultRadius = 2
)

// PageCount returns how many pages total records span.
// ShowAll is always one page.
func PageCount(total, size int) int {

	switch {
	case size == ShowAll:
		return 1
	case size <= 0:
		return 0
	}
	return (total + size - 1) / size
}

// Page slices out the 1-based page index.
// Out of range bounds shorten the slice rather than fail.
func Page(records []nt.Record, index, size int) []nt.Record {

	if size == ShowAll {
		return records
	}
	if size <= 0 || index < 1 {
		return []nt.Record{}
	}

	lo := min((index-1)*size, len(records))
	hi := min(index*size, len(records))
	return records[lo:hi]
}

// Bounds returns the 1-based ordinals of the first and last rows on a page.
// Both are zero when there are no rows.
func Bounds(total, index, size int) (first, last int) {

	if total <= 0 {
		return
	}
	if size == ShowAll {
		return 1, total
	}

	first = (index-1)*size + 1
	last = min(first+size-1, total)
	return
}

// Window is the run of page numbers offered by a pager.
type Window struct {
	Numbers    []int
	MoreBefore bool
	MoreAfter  bool
}

// Pages returns the page number window around index.
//
// The first page shows radius numbers, the last page shows radius+1 and any
// page in between shows radius either side, clipped to [1, count].
func Pages(index, count, radius int) (win Window) {

	if count < 1 {
		return
	}
	if radius < 1 {
		radius = DefaultRadius
	}

	var lo, hi int
	switch index {
	case 1:
		lo, hi = 1, min(radius, count)
		win.MoreAfter = count > radius
	case count:
		lo, hi = max(1, count-radius), count
		win.MoreBefore = count-radius > radius
	default:
		lo, hi = max(1, index-radius), min(count, index+radius)
		win.MoreAfter = index+radius < count
		win.MoreBefore = index-radius > 0
	}

	for num := lo; num <= hi; num++ {
		win.Numbers = append(win.Numbers, num)
	}
	return
}
