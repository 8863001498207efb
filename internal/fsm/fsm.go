package fsm

// Status constants used by the bankslip state machine.
const (
	StatusPending  = "PENDING"
	StatusPaid     = "PAID"
	StatusCanceled = "CANCELED"
)

// PAID and CANCELED are terminal: they have no outgoing transitions.
var transitions = map[string]map[string]struct{}{
	StatusPending:  {StatusPaid: {}, StatusCanceled: {}},
	StatusPaid:     {},
	StatusCanceled: {},
}

// CanTransition returns whether a bankslip can transition from the current status to the target status.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// IsTerminal reports whether the status has no outgoing transitions.
func IsTerminal(status string) bool {
	allowed, ok := transitions[status]
	return ok && len(allowed) == 0
}
