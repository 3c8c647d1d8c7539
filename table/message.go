package table

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg()  {}
func (ResetMsg) isTableMsg() {}

// SizeMsg tells the panel its display size
type SizeMsg struct {
	Width  int
	Height int
}

// ResetMsg clears filters and returns to the first page
type ResetMsg struct{}
