package message

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"

	nt "tabula/entity"
)

// ErrorCmd returns a command delivering err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// StatusCmd returns a command delivering a status line
func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}

// Inbox is a Notifier holding notices until drained into messages.
type Inbox struct {
	mu      sync.Mutex
	notices []nt.Notice
}

func (box *Inbox) Notify(ctx context.Context, notice nt.Notice) {
	box.mu.Lock()
	defer box.mu.Unlock()

	box.notices = append(box.notices, notice)
}

// Cmd drains pending notices, nil when there are none.
func (box *Inbox) Cmd() tea.Cmd {

	box.mu.Lock()
	notices := box.notices
	box.notices = nil
	box.mu.Unlock()

	if len(notices) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, len(notices))
	for i, notice := range notices {
		cmds[i] = func() tea.Msg {
			return NoticeMsg{Notice: notice}
		}
	}
	return tea.Sequence(cmds...)
}
