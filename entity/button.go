package entity

// ButtonKind identifies a toolbar button.
type ButtonKind string

const (
	Excel        ButtonKind = "excel"
	Pdf          ButtonKind = "pdf"
	Csv          ButtonKind = "csv"
	Copy         ButtonKind = "copy"
	Colvis       ButtonKind = "colvis"
	CustomButton ButtonKind = "custom"
)

// Button is a toolbar button, usually an export.
type Button struct {
	Kind    ButtonKind `yaml:"kind"`
	Name    string     `yaml:"name,omitempty"`
	Content string     `yaml:"content,omitempty"`
	Title   string     `yaml:"title,omitempty"`
	Hidden  bool       `yaml:"hidden,omitempty"`
}

func (btn Button) Visible() bool {
	return !btn.Hidden
}
