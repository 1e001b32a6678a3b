package booking

// Status is the approval status of a booking. Waiting is the initial
// status; Approved and Rejected are terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// State is the temporal/status bucket used when listing bookings.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return true
	default:
		return false
	}
}

// ParseState maps a raw query parameter onto the closed State set.
// An empty value defaults to ALL, matching the original endpoint contract.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	s := State(raw)
	if !s.IsValid() {
		return "", ErrUnknownState
	}
	return s, nil
}
