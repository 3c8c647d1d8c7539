package entity

// TableModel is the caller's table configuration.
// It is normalized once before use; see package normal.
type TableModel struct {
	Title        string   `yaml:"title,omitempty"`
	Columns      []Column `yaml:"columns"`
	Actions      []Action `yaml:"actions,omitempty"`
	Buttons      []Button `yaml:"buttons,omitempty"`
	Language     Language `yaml:"language,omitempty"`
	ActionsAt    *int     `yaml:"actions_at,omitempty"`
	PageSize     int      `yaml:"page_size,omitempty"`
	PageSizes    []int    `yaml:"page_sizes,omitempty"`
	WindowRadius int      `yaml:"window_radius,omitempty"`
}

// Field returns the column for a field name.
func (tm TableModel) Field(field string) (col Column, ok bool) {
	for _, candidate := range tm.Columns {
		if candidate.Field == field {
			return candidate, true
		}
	}
	return
}
