package tabula

import (
	_ "embed"
	"os"

	nt "tabula/entity"
	"tabula/util"
)

//go:embed sample.yaml
var SampleLayout []byte

// Layout is the yaml file describing what to load and how to show it.
type Layout struct {
	Source    string        `yaml:"source,omitempty"`
	Query     string        `yaml:"query,omitempty"`
	ExportDir string        `yaml:"export_dir,omitempty"`
	Table     nt.TableModel `yaml:"table"`
}

// LoadLayout reads a layout from path.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	return
}

// Save writes the layout back to path, keeping column visibility.
func (layout *Layout) Save(path string, columns []nt.Column) (err error) {

	saved := *layout
	saved.Table.Columns = columns
	err = util.WriteConfig(saved, path, 0644)
	return
}

// WriteSample writes the sample layout unless path exists.
func WriteSample(path string) (err error) {
	return util.SampleConfig(SampleLayout, path, os.FileMode(0644))
}
