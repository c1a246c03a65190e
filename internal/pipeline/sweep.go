// Package pipeline drives the port sweep: probe, then service lookup and
// owner correlation for whatever answered, one port at a time.
package pipeline

import "github.com/portlens/portlens/pkg/model"

// MinPort and MaxPort bound every sweep. Ports outside this range are
// never probed, whatever the config says.
const (
	MinPort = 1
	MaxPort = 65535
)

type Prober interface {
	Probe(port int) model.Observation
}

type Correlator interface {
	Correlate(port int) (model.ProcessRecord, bool)
}

type ServiceResolver interface {
	Lookup(port int, proto string) string
}

// Reporter receives one record per open port, in sweep order.
type Reporter interface {
	Record(model.Record)
}

type SweepConfig struct {
	First, Last int
	Prober      Prober
	Correlator  Correlator
	Services    ServiceResolver
	Reporter    Reporter
}

// Sweep probes every port in [First, Last] ascending, strictly one at a
// time. An unreachable port produces nothing. A reachable one produces
// exactly one record; correlation happens after the probe so the prober's
// own transient connections are already gone from most snapshots, and any
// process that exits in between simply yields a record with no owner.
// Per-port failures never abort the sweep.
func Sweep(cfg SweepConfig) {
	first, last := clampRange(cfg.First, cfg.Last)

	for port := first; port <= last; port++ {
		obs := cfg.Prober.Probe(port)
		if !obs.Reachable {
			continue
		}

		rec := model.Record{
			Port:    port,
			State:   obs.State,
			Service: cfg.Services.Lookup(port, "tcp"),
		}
		if owner, ok := cfg.Correlator.Correlate(port); ok {
			rec.Process = &owner
		}
		cfg.Reporter.Record(rec)
	}
}

func clampRange(first, last int) (int, int) {
	if first < MinPort {
		first = MinPort
	}
	if last > MaxPort {
		last = MaxPort
	}
	return first, last
}
