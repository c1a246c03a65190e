package model

// PortState is the classified state of a reachable port. It is derived
// only from connection attempt outcomes, never from the process table.
type PortState string

const (
	StateListening   PortState = "LISTENING"
	StateEstablished PortState = "ESTABLISHED"
	StateOpen        PortState = "OPEN"
)

// Observation is the outcome of probing a single port. A fresh value is
// produced per probe and never reused. State is meaningful only when
// Reachable is true.
type Observation struct {
	Port      int
	Reachable bool
	State     PortState
}
