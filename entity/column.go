package entity

// DataType hints how a column's values are formatted.
type DataType string

const (
	Text   DataType = "text"
	Number DataType = "number"
	Date   DataType = "date"
	Bool   DataType = "bool"
	Html   DataType = "html"
)

// Renderer renders a custom cell for a record.
type Renderer interface {
	Render(rec Record, field string) string
}

// RendererFunc adapts a func to Renderer.
type RendererFunc func(rec Record, field string) string

func (fn RendererFunc) Render(rec Record, field string) string {
	return fn(rec, field)
}

// Column describes how a record field is shown.
// Zero values give a visible, searchable text column.
type Column struct {
	Field        string   `yaml:"field"`
	Title        string   `yaml:"title,omitempty"`
	Width        int      `yaml:"width,omitempty"`
	Type         DataType `yaml:"type,omitempty"`
	Format       string   `yaml:"format,omitempty"`
	Hidden       bool     `yaml:"hidden,omitempty"`
	NoSearch     bool     `yaml:"no_search,omitempty"`
	InlineSearch bool     `yaml:"inline_search,omitempty"`
	Json         bool     `yaml:"json,omitempty"` // Holds escaped json, expanded in record detail

	Renderer Renderer `yaml:"-"`
}

// Heading returns the display title, falling back to the field name.
func (col Column) Heading() string {
	if col.Title == "" {
		return col.Field
	}
	return col.Title
}

func (col Column) Visible() bool {
	return !col.Hidden
}

func (col Column) Searchable() bool {
	return !col.NoSearch
}
