// Package probe classifies local TCP ports by dialing them.
//
// The classification is a connect-only heuristic: a listening socket
// accepts any number of dials, while a port held open by a single paired
// connection refuses a second one. No raw sockets, no kernel tables.
package probe

import (
	"errors"
	"net"
	"strconv"
	"syscall"

	"github.com/portlens/portlens/pkg/model"
)

// Prober probes one port at a time against a fixed host. The zero timeout
// is deliberate: dials block until the stack's own connect timeout, which
// is the behavior the sweep inherits.
type Prober struct {
	host string
	dial func(network, address string) (net.Conn, error)
}

func New(host string) *Prober {
	if host == "" {
		host = "127.0.0.1"
	}
	return &Prober{host: host, dial: net.Dial}
}

// Probe dials port up to twice and classifies the result. The second dial
// only happens when the first succeeds. Both connections are closed before
// returning; a 65535-port sweep leaks descriptors otherwise.
func (p *Prober) Probe(port int) model.Observation {
	obs := model.Observation{Port: port}

	addr := net.JoinHostPort(p.host, strconv.Itoa(port))
	first, err := p.dial("tcp4", addr)
	if err != nil {
		// Refused, timed out, or the socket could not be created at
		// all. Either way the port yields no record.
		return obs
	}
	defer first.Close()
	obs.Reachable = true

	second, err := p.dial("tcp4", addr)
	if err == nil {
		second.Close()
		obs.State = model.StateListening
		return obs
	}

	if isConnectFailure(err) {
		// The peer holds a single paired connection and cannot take
		// a second dial.
		obs.State = model.StateEstablished
		return obs
	}

	// Unexpected failure (descriptor exhaustion and friends): the port is
	// demonstrably open but its state is anyone's guess.
	obs.State = model.StateOpen
	return obs
}

// isConnectFailure reports whether err is an ordinary connection-level
// rejection rather than a local socket failure.
func isConnectFailure(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
