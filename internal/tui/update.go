package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/portlens/portlens/pkg/model"
)

type tickMsg time.Time

func waitTick() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		var cmd tea.Cmd
		if !m.quitting && !m.input.Focused() {
			cmd = m.refreshPorts()
		}
		return m, tea.Batch(cmd, waitTick())

	case []model.OpenPort:
		m.ports = msg
		m.statusMsg = ""
		m.sortPorts()
		m.applyFilter()
		return m, nil

	case error:
		m.statusMsg = msg.Error()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 10
		if h < 5 {
			h = 5
		}
		m.table.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.input.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.input.Focus()
			return m, nil
		case "r":
			return m, m.refreshPorts()
		case "o":
			m.toggleSort("port")
			return m, nil
		case "s":
			m.toggleSort("state")
			return m, nil
		case "p":
			m.toggleSort("pid")
			return m, nil
		case "n":
			m.toggleSort("process")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// toggleSort flips direction when the column is already active, the way
// every spreadsheet does it.
func (m *MainModel) toggleSort(col string) {
	if m.sortCol == col {
		m.sortDesc = !m.sortDesc
	} else {
		m.sortCol = col
		m.sortDesc = false
	}
	m.sortPorts()
	m.applyFilter()
}
