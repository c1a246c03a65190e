//go:build linux

package pipeline

import (
	"net"
	"os"
	"testing"

	"github.com/portlens/portlens/internal/probe"
	"github.com/portlens/portlens/internal/proc"
	"github.com/portlens/portlens/internal/services"
	"github.com/portlens/portlens/pkg/model"
)

// End-to-end composition over a narrow slice of the port space: two real
// listeners, the real prober, the real /proc correlator and service
// resolver.
func TestSweepIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration sweep skipped in short mode")
	}

	lnA, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot bind loopback listener: %v", err)
	}
	defer lnA.Close()
	lnB, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot bind loopback listener: %v", err)
	}
	defer lnB.Close()

	for _, ln := range []net.Listener{lnA, lnB} {
		go func(ln net.Listener) {
			for {
				conn, err := ln.Accept()
				if err != nil {
					return
				}
				conn.Close()
			}
		}(ln)
	}

	portA := lnA.Addr().(*net.TCPAddr).Port
	portB := lnB.Addr().(*net.TCPAddr).Port
	first, last := portA, portB
	if first > last {
		first, last = last, first
	}

	reporter := &recordingReporter{}
	Sweep(SweepConfig{
		First:      first,
		Last:       last,
		Prober:     probe.New("127.0.0.1"),
		Correlator: proc.NewCorrelator(os.Getpid()),
		Services:   services.NewResolver(),
		Reporter:   reporter,
	})

	found := map[int]model.Record{}
	for i, rec := range reporter.records {
		if i > 0 && reporter.records[i-1].Port >= rec.Port {
			t.Fatalf("records not in ascending port order: %d then %d",
				reporter.records[i-1].Port, rec.Port)
		}
		found[rec.Port] = rec
	}

	for _, port := range []int{portA, portB} {
		rec, ok := found[port]
		if !ok {
			t.Fatalf("listener port %d missing from report", port)
		}
		if rec.State != model.StateListening {
			t.Fatalf("port %d: expected LISTENING, got %s", port, rec.State)
		}
		if rec.Service == "" {
			t.Fatalf("port %d: service must never be empty", port)
		}
		if rec.Process != nil && rec.Process.PID == os.Getpid() {
			t.Fatalf("port %d attributed to the scanner itself", port)
		}
	}
}
