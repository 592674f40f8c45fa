package purchase

// Status is the adjudication state of a purchase request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether next is reachable from s. Only pending
// requests move, and only to a final state.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusRejected)
}

// IsFinal reports whether the request has been adjudicated.
func (s Status) IsFinal() bool {
	return s == StatusApproved || s == StatusRejected
}
