package engine

import (
	"fmt"

	nt "tabula/entity"
)

func people() []nt.Record {
	return []nt.Record{
		{"name": "Bob", "age": 30},
		{"name": "Ann", "age": 25},
	}
}

func numbered(n int) []nt.Record {
	records := make([]nt.Record, n)
	for i := range records {
		records[i] = nt.Record{"id": i + 1, "label": fmt.Sprintf("row-%02d", i+1)}
	}
	return records
}
