package session

// Status is the in-flight state of a session.
type Status int

const (
	// StatusIdle means no request is outstanding and input is accepted.
	StatusIdle Status = iota
	// StatusBusy means a request to the agent is outstanding.
	StatusBusy
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusBusy:
		return "busy"
	default:
		return "unknown"
	}
}
