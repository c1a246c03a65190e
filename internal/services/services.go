// Package services resolves conventional service names for ports, the way
// getservbyport would: the system services database first, with a builtin
// table of IANA registrations backing up hosts that ship a sparse one.
package services

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Unknown is returned for ports with no registered name. Absence of a name
// is not an error.
const Unknown = "unknown"

var builtin = map[string]string{
	"20/tcp":   "ftp-data",
	"21/tcp":   "ftp",
	"22/tcp":   "ssh",
	"23/tcp":   "telnet",
	"25/tcp":   "smtp",
	"53/tcp":   "domain",
	"80/tcp":   "http",
	"110/tcp":  "pop3",
	"111/tcp":  "sunrpc",
	"135/tcp":  "msrpc",
	"139/tcp":  "netbios-ssn",
	"143/tcp":  "imap",
	"443/tcp":  "https",
	"445/tcp":  "microsoft-ds",
	"465/tcp":  "smtps",
	"587/tcp":  "submission",
	"993/tcp":  "imaps",
	"995/tcp":  "pop3s",
	"1723/tcp": "pptp",
	"2049/tcp": "nfs",
	"3306/tcp": "mysql",
	"3389/tcp": "ms-wbt-server",
	"5432/tcp": "postgresql",
	"5900/tcp": "vnc",
	"6379/tcp": "redis",
	"8080/tcp": "http-alt",
}

// Resolver is a static port-to-name lookup, loaded once. It never hits the
// network and never fails: a miss yields Unknown.
type Resolver struct {
	names map[string]string
}

// NewResolver loads /etc/services on top of the builtin table.
func NewResolver() *Resolver {
	return newResolver("/etc/services")
}

func newResolver(path string) *Resolver {
	r := &Resolver{names: make(map[string]string, len(builtin))}
	for k, v := range builtin {
		r.names[k] = v
	}
	r.loadFile(path)
	return r
}

// Lookup returns the conventional name for (port, proto), or Unknown.
func (r *Resolver) Lookup(port int, proto string) string {
	if name, ok := r.names[key(port, proto)]; ok {
		return name
	}
	return Unknown
}

func key(port int, proto string) string {
	return strconv.Itoa(port) + "/" + strings.ToLower(proto)
}

// loadFile parses a services(5) database. Lines look like:
//
//	http            80/tcp          www www-http    # World Wide Web
//
// Aliases and comments are dropped; the database overrides the builtin
// table where both have an entry. A missing or malformed file leaves the
// builtin table in place.
func (r *Resolver) loadFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		portProto := strings.SplitN(fields[1], "/", 2)
		if len(portProto) != 2 {
			continue
		}
		port, err := strconv.Atoi(portProto[0])
		if err != nil || port < 1 || port > 65535 {
			continue
		}
		r.names[key(port, portProto[1])] = fields[0]
	}
}
