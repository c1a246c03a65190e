package tui

import (
	"fmt"
	"strings"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("portlens"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("live ports"))
	b.WriteString("\n\n")

	status := "Mode: Navigation (Press / to search)"
	if m.input.Focused() {
		status = "Mode: Searching (Press Esc/Enter to stop)"
	}
	if m.statusMsg != "" {
		status = errorStyle.Render(m.statusMsg)
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(baseStyle.Render(m.table.View()))
	b.WriteString("\n")

	footerWidth := m.width - 2
	if footerWidth < 0 {
		footerWidth = 0
	}
	footer := fmt.Sprintf("%s • %d sockets • sort: %s • o/s/p/n sort, r refresh, q quit • %s",
		status, len(m.filtered), m.sortCol, m.version)
	b.WriteString(footerStyle.Width(footerWidth).Render(footer))

	return b.String()
}
