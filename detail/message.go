package detail

import nt "tabula/entity"

type DetailMsg interface {
	isDetailMsg()
}

func (SizeMsg) isDetailMsg()   {}
func (RecordMsg) isDetailMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// RecordMsg sets the record shown along with the columns describing it.
type RecordMsg struct {
	Record  nt.Record
	Columns []nt.Column
}
