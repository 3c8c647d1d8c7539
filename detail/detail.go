// Package detail shows one record in full as indented json.
package detail

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	nt "tabula/entity"
)

// DetailPanel scrolls through every field of a record, hidden columns included.
type DetailPanel struct {
	columns []nt.Column

	record nt.Record
	lines  []string // Rendered content split into lines (cached)

	width  int
	height int
	offset int // Line offset for scrolling content
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case RecordMsg:
		pnl.record = msg.Record
		pnl.columns = msg.Columns
		pnl.lines = render(pnl.record, pnl.columns)
		pnl.offset = 0

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.offset = min(pnl.offset, pnl.maxOffset())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			pnl.offset--
		case "down", "j":
			pnl.offset++
		case "pgup", "p":
			pnl.offset -= pnl.height
		case "pgdown", "n":
			pnl.offset += pnl.height
		case "g":
			pnl.offset = 0
		case "G":
			pnl.offset = pnl.maxOffset()
		}
		pnl.offset = max(0, min(pnl.offset, pnl.maxOffset()))
	}

	return pnl, nil
}

func (pnl DetailPanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render returns the lines in view
func (pnl DetailPanel) Render() string {

	if pnl.lines == nil {
		return "No record selected"
	}

	visible := slices.Clone(pnl.lines[pnl.offset:])
	if pnl.height > 0 && len(visible) > pnl.height {
		visible = visible[:pnl.height]
	}

	if pnl.width > 0 {
		for i, line := range visible {
			runes := []rune(line)
			if len(runes) > pnl.width {
				visible[i] = string(runes[:pnl.width])
			}
		}
	}

	return strings.Join(visible, "\n")
}

// unexported

func (pnl DetailPanel) maxOffset() int {

	if pnl.height <= 0 {
		return max(0, len(pnl.lines)-1)
	}
	return max(0, len(pnl.lines)-pnl.height)
}

func render(record nt.Record, columns []nt.Column) []string {

	if record == nil {
		return nil
	}

	data, err := expandJson(record, columns)
	if err != nil {
		return []string{"Error expanding json fields: " + err.Error()}
	}

	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	err = encoder.Encode(data)
	if err != nil {
		return []string{"Error encoding record: " + err.Error()}
	}

	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

// expandJson parses escaped json held in columns marked Json.
// Values that fail to parse are left as they are.
func expandJson(record nt.Record, columns []nt.Column) (map[string]any, error) {

	jsonFields := map[string]bool{}
	for _, col := range columns {
		if col.Json {
			jsonFields[col.Field] = true
		}
	}

	result := make(map[string]any, len(record))
	maps.Copy(result, record)

	for key, val := range result {
		if !jsonFields[key] || val == nil {
			continue
		}

		str, ok := val.(string)
		if !ok {
			return nil, errors.Errorf("field %q marked as json but is not a string", key)
		}
		if str == "" {
			continue
		}

		var parsed any
		err := json.Unmarshal([]byte(str), &parsed)
		if err == nil {
			result[key] = parsed
		}
	}

	return result, nil
}
