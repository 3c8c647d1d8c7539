package entity

// Sort is the single active sort directive.
type Sort struct {
	Field string // Field name to sort by
	Desc  bool   // Sort descending if true, ascending if false
}

// Ascending is the inverse of Desc.
func (srt Sort) Ascending() bool {
	return !srt.Desc
}

// Flip returns the sort with direction reversed.
func (srt Sort) Flip() Sort {
	srt.Desc = !srt.Desc
	return srt
}
