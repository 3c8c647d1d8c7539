package tabula

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"tabula/engine"
	nt "tabula/entity"
	"tabula/style"
)

// RenderFooter renders the entries line and pager, with status below.
func RenderFooter(info, pager, status string, width int) string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	left := info
	right := pager

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	footer := muted.Render(left) + strings.Repeat(" ", padding) + right
	return footer + "\n" + muted.Render(status)
}

// RenderPager renders first/previous, the page window and next/last.
func RenderPager(win engine.Window, index int, lang nt.Language) string {

	parts := []string{lang.Format("first"), lang.Format("previous")}
	if win.MoreBefore {
		parts = append(parts, "…")
	}

	for _, num := range win.Numbers {
		label := fmt.Sprintf("%d", num)
		if num == index {
			label = style.CurrentStyle.Render(label)
		}
		parts = append(parts, label)
	}

	if win.MoreAfter {
		parts = append(parts, "…")
	}
	parts = append(parts, lang.Format("next"), lang.Format("last"))

	return strings.Join(parts, " ")
}
