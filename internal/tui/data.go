package tui

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	gnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/portlens/portlens/pkg/model"
)

// refreshPorts snapshots the host's TCP sockets with owner details. The
// snapshot is taken off the update loop; a failed read keeps the previous
// view rather than blanking it.
func (m MainModel) refreshPorts() tea.Cmd {
	return func() tea.Msg {
		conns, err := gnet.Connections("tcp")
		if err != nil {
			return err
		}

		selfPID := int32(os.Getpid())
		procCache := map[int32][2]string{} // pid -> name, user

		ports := make([]model.OpenPort, 0, len(conns))
		for _, c := range conns {
			if c.Laddr.Port == 0 || c.Pid == selfPID {
				continue
			}

			name, user := "", ""
			if c.Pid > 0 {
				if cached, ok := procCache[c.Pid]; ok {
					name, user = cached[0], cached[1]
				} else if p, err := process.NewProcess(c.Pid); err == nil {
					name, _ = p.Name()
					user, _ = p.Username()
					procCache[c.Pid] = [2]string{name, user}
				}
			}

			ports = append(ports, model.OpenPort{
				Port:    int(c.Laddr.Port),
				Proto:   "tcp",
				Address: c.Laddr.IP,
				State:   c.Status,
				PID:     int(c.Pid),
				Process: name,
				User:    user,
			})
		}
		return ports
	}
}

func (m *MainModel) sortPorts() {
	sort.Slice(m.ports, func(i, j int) bool {
		var less bool
		switch m.sortCol {
		case "state":
			less = strings.ToLower(m.ports[i].State) < strings.ToLower(m.ports[j].State)
		case "pid":
			less = m.ports[i].PID < m.ports[j].PID
		case "process":
			less = strings.ToLower(m.ports[i].Process) < strings.ToLower(m.ports[j].Process)
		default:
			less = m.ports[i].Port < m.ports[j].Port
		}
		if m.sortDesc {
			return !less
		}
		return less
	})
}

// applyFilter narrows the visible rows to those matching the search text
// across every column.
func (m *MainModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if query == "" {
		m.filtered = m.ports
	} else {
		m.filtered = make([]model.OpenPort, 0, len(m.ports))
		for _, p := range m.ports {
			haystack := strings.ToLower(strings.Join([]string{
				strconv.Itoa(p.Port), p.Proto, p.Address, p.State,
				strconv.Itoa(p.PID), p.Process, p.User,
			}, " "))
			if strings.Contains(haystack, query) {
				m.filtered = append(m.filtered, p)
			}
		}
	}
	m.rebuildRows()
}

func (m *MainModel) rebuildRows() {
	rows := make([]table.Row, 0, len(m.filtered))
	for _, p := range m.filtered {
		pid := ""
		if p.PID > 0 {
			pid = strconv.Itoa(p.PID)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(p.Port),
			p.Proto,
			p.Address,
			p.State,
			pid,
			p.User,
			truncate.StringWithTail(p.Process, 36, "…"),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}
