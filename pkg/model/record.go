package model

// ProcessRecord identifies the process owning a port at the instant of
// correlation. Processes come and go while the sweep runs, so a record is
// only as fresh as the /proc snapshot it was built from.
type ProcessRecord struct {
	PID   int
	Name  string
	Owner string // resolved username, or "unknown"
}

// Record is one emitted report row for an open port.
type Record struct {
	Port    int
	State   PortState
	Service string
	Process *ProcessRecord // nil when no owner was found
}
