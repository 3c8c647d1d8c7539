package tabula

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"tabula/detail"
	nt "tabula/entity"
	"tabula/message"
	"tabula/state"
	"tabula/table"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the table viewer.
type Model struct {
	ctl    *state.Controller
	source Source
	query  string
	status string

	errorString string

	TablePanel  table.TablePanel
	DetailPanel detail.DetailPanel
	showDetail  bool

	Width  int
	Height int

	ctx    context.Context
	logger nt.Logger
}

// NewModel creates a new bt model.
func NewModel(ctx context.Context, ctl *state.Controller, inbox *message.Inbox, src Source, query string, lgr nt.Logger) Model {

	return Model{
		ctl:        ctl,
		source:     src,
		query:      query,
		TablePanel: table.NewTablePanel(ctx, ctl, inbox, lgr),
		ctx:        ctx,
		logger:     lgr,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.StatusMsg:
		m.status = msg.Text
		return m, nil

	case message.NoticeMsg:
		m.status = describe(msg.Notice, m.ctl.Visible())
		m.logger.Info(m.ctx, "action", "kind", msg.Notice.Kind, "name", msg.Notice.Name)
		return m, nil

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		if m.showDetail {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc", "enter":
				m.showDetail = false
				return m, nil
			}
			m.DetailPanel, _ = m.DetailPanel.Update(msg)
			return m, nil
		}

		if !m.TablePanel.Editing() {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "r":
				return m, func() tea.Msg { return table.ResetMsg{} }
			case "R":
				return m, m.reload()
			case "enter":
				rec, ok := m.TablePanel.Selected()
				if ok {
					m.showDetail = true
					m.DetailPanel, _ = m.DetailPanel.Update(detail.RecordMsg{
						Record:  rec,
						Columns: m.ctl.Columns(),
					})
				}
				return m, nil
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		m.DetailPanel, _ = m.DetailPanel.Update(detail.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		})
		return m.updatePanel(table.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		})
	}

	return m.updatePanel(msg)
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	screen := m.TablePanel.Render()
	if m.showDetail {
		screen = m.DetailPanel.Render()
	}
	screenLayer := lipgloss.NewLayer("screen", screen)

	lang := m.ctl.Model().Language
	pager := RenderPager(m.ctl.Pages(), m.ctl.PageIndex(), lang)

	status := m.source.Name()
	if m.status != "" {
		status = m.status
	}
	if m.errorString != "" {
		status = m.errorString
	}

	footerContent := RenderFooter(m.ctl.Info(), pager, status, m.Width)
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

// reload queries the source again, keeping filter and page
func (m Model) reload() tea.Cmd {

	records, err := m.source.Records(m.ctx, m.query)
	if err != nil {
		return message.ErrorCmd(err)
	}

	m.ctl.Load(records)
	m.logger.Info(m.ctx, "reloaded", "source", m.source.Name(), "records", len(records))
	return message.StatusCmd(fmt.Sprintf("reloaded %d records", len(records)))
}

func (m Model) updatePanel(msg tea.Msg) (tea.Model, tea.Cmd) {

	panel, cmd := m.TablePanel.Update(msg)
	m.TablePanel = panel.(table.TablePanel)
	return m, cmd
}

func describe(notice nt.Notice, cols []nt.Column) string {

	if notice.Record == nil {
		return notice.Name
	}

	label := ""
	if len(cols) > 0 {
		label = notice.Record.Get(cols[0].Field).String()
	}
	return fmt.Sprintf("%s: %s", notice.Name, label)
}
