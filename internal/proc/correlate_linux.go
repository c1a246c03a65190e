//go:build linux

// Package proc correlates local ports with owning processes by walking the
// /proc filesystem. Nothing here needs privileges: unreadable process
// directories are skipped, the same as processes that exit mid-scan.
package proc

import (
	"bufio"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/portlens/portlens/pkg/model"
)

// UnknownOwner is reported when the numeric uid cannot be resolved
// against the user database.
const UnknownOwner = "unknown"

// Correlator maps a port number to the process owning it. selfPID is fixed
// at construction so the scanner's own probe connections are never
// attributed to itself, no matter when the first correlation runs.
type Correlator struct {
	root    string // proc mountpoint, swappable for tests
	selfPID int
}

func NewCorrelator(selfPID int) *Correlator {
	return &Correlator{root: "/proc", selfPID: selfPID}
}

// Correlate scans every live process's socket table for port and returns
// the first owner found. Enumeration order is whatever the kernel hands
// back from /proc, so ties between racing processes are not deterministic.
// The boolean is false when no process claims the port.
func (c *Correlator) Correlate(port int) (model.ProcessRecord, bool) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return model.ProcessRecord{}, false
	}

	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue // /proc has plenty of non-pid entries
		}
		if pid == c.selfPID {
			continue
		}
		if !c.ownsPort(pid, port) {
			continue
		}

		name, err := c.readComm(pid)
		if err != nil {
			// Exited between the table read and now. Keep looking.
			continue
		}

		return model.ProcessRecord{
			PID:   pid,
			Name:  name,
			Owner: c.readOwner(pid),
		}, true
	}

	return model.ProcessRecord{}, false
}

// ownsPort reports whether pid's net/tcp table has an entry whose local
// port matches. The scan stops at the first matching row.
func (c *Correlator) ownsPort(pid, port int) bool {
	f, err := os.Open(filepath.Join(c.root, strconv.Itoa(pid), "net", "tcp"))
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Scan() // skip header

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if parseLocalPort(fields[1]) == port {
			return true
		}
	}
	return false
}

// parseLocalPort extracts the port from a local_address column value such
// as "0100007F:1F90". The kernel stores the port as hex. Returns -1 on
// malformed input.
func parseLocalPort(local string) int {
	i := strings.IndexByte(local, ':')
	if i < 0 {
		return -1
	}
	port, err := strconv.ParseUint(local[i+1:], 16, 16)
	if err != nil {
		return -1
	}
	return int(port)
}

func (c *Correlator) readComm(pid int) (string, error) {
	b, err := os.ReadFile(filepath.Join(c.root, strconv.Itoa(pid), "comm"))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\n"), nil
}

// readOwner finds the real uid in the process's status record and resolves
// it against the user database. Any failure along the way degrades to
// UnknownOwner rather than failing the correlation.
func (c *Correlator) readOwner(pid int) string {
	f, err := os.Open(filepath.Join(c.root, strconv.Itoa(pid), "status"))
	if err != nil {
		return UnknownOwner
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Uid:") {
			continue
		}
		// Uid: real effective saved fs
		fields := strings.Fields(line[len("Uid:"):])
		if len(fields) == 0 {
			break
		}
		u, err := user.LookupId(fields[0])
		if err != nil {
			return UnknownOwner
		}
		return u.Username
	}
	return UnknownOwner
}
