package purchase

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestNotFound is returned when no pending request has the given id.
	// It covers both unknown ids and requests that were already adjudicated.
	ErrRequestNotFound = errors.New("purchase request not found")

	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid purchase request status")
)

// ErrInvalidStatusTransition returns an error for a transition the state machine forbids
func ErrInvalidStatusTransition(from, to Status) error {
	return fmt.Errorf("invalid status transition from %s to %s", from, to)
}
