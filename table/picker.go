package table

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	nt "tabula/entity"
	"tabula/style"
)

// choice is a column as listed by the visibility picker
type choice struct {
	field   string
	heading string
	shown   bool
}

// choices lists every column, hidden ones included, with actions where they sit
func (pnl TablePanel) choices() []choice {

	model := pnl.ctl.Model()

	list := make([]choice, 0, len(model.Columns)+1)
	for _, col := range model.Columns {
		list = append(list, choice{field: col.Field, heading: col.Heading(), shown: col.Visible()})
	}

	if len(pnl.ctl.RowActions()) > 0 {
		at := min(*model.ActionsAt, len(list))
		actions := choice{
			field:   nt.ActionsField,
			heading: model.Language.Format(actionsTitle),
			shown:   pnl.ctl.ShowActions(),
		}
		list = slices.Insert(list, at, actions)
	}
	return list
}

func (pnl TablePanel) handlePick(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	list := pnl.choices()

	switch msg.String() {
	case "left", "h":
		pnl.pick--

	case "right", "l":
		pnl.pick++

	case "space", "x":
		if pnl.pick >= 0 && pnl.pick < len(list) {
			pnl.ctl.ToggleColumn(list[pnl.pick].field)
			pnl.column = max(0, min(pnl.column, len(pnl.columns())-1))
		}

	case "enter", "esc", "C":
		pnl.mode = browsing
	}

	pnl.pick = max(0, min(pnl.pick, len(list)-1))
	return pnl, nil
}

// picker renders the column list in place of the toolbar
func (pnl TablePanel) picker() string {

	label := "Columns"
	for _, btn := range pnl.ctl.Buttons() {
		if btn.Kind == nt.Colvis {
			label = btn.Content
		}
	}

	parts := []string{label + ":"}
	for i, ch := range pnl.choices() {
		box := "[ ] "
		if ch.shown {
			box = "[x] "
		}

		item := box + ch.heading
		if i == pnl.pick {
			item = style.InputStyle.Render(item)
		}
		parts = append(parts, item)
	}

	return strings.Join(parts, "  ")
}
