package model

// OpenPort is a live snapshot row for the interactive view: a socket that
// currently exists on this host together with whatever owner information
// was resolvable at snapshot time.
type OpenPort struct {
	Port    int
	Proto   string
	Address string
	State   string
	PID     int
	Process string
	User    string
}
