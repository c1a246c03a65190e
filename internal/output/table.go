// Package output renders the sweep report as a fixed-width table.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/portlens/portlens/pkg/model"
)

// Column widths, sized for the widest expected value plus padding
// ("ESTABLISHED" in STATE, long service names in SERVICE).
const (
	colPort    = 8
	colState   = 12
	colService = 20
	colProc    = 30
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5f5fd7")) // Purple/Blue

	bannerStyle = lipgloss.NewStyle().Bold(true)
)

// Table streams records to w as column-aligned rows. Styling is applied
// only when color is enabled, so redirected output stays plain text.
type Table struct {
	w     io.Writer
	color bool
}

func NewTable(w io.Writer, color bool) *Table {
	return &Table{w: w, color: color}
}

// Banner prints the one-time preamble before the sweep starts.
func (t *Table) Banner(host string, first, last int) {
	line := fmt.Sprintf("Scanning %s ports %d to %d...", host, first, last)
	if t.color {
		line = bannerStyle.Render(line)
	}
	fmt.Fprintf(t.w, "%s\n\n", line)
}

// Header prints the column titles and separator, once.
func (t *Table) Header() {
	titles := fmt.Sprintf("%-*s%-*s%-*s%-*s",
		colPort, "PORT",
		colState, "STATE",
		colService, "SERVICE",
		colProc, "PROCESS")
	if t.color {
		titles = headerStyle.Render(titles)
	}
	fmt.Fprintln(t.w, titles)
	fmt.Fprintln(t.w, strings.Repeat("-", colPort+colState+colService+colProc))
}

// Record prints one report row. Ports with no resolved owner get an empty
// PROCESS column rather than a placeholder.
func (t *Table) Record(r model.Record) {
	proc := ""
	if r.Process != nil {
		proc = fmt.Sprintf("%s PID: %d User: %s",
			r.Process.Name, r.Process.PID, r.Process.Owner)
	}
	fmt.Fprintf(t.w, "%-*d%-*s%-*s%-*s\n",
		colPort, r.Port,
		colState, r.State,
		colService, r.Service,
		colProc, proc)
}
