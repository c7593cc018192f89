package domain

import (
	"fmt"
	"time"
)

// Status represents the approval lifecycle of an account.
type Status string

const (
	// StatusPending is the initial state of every registered user.
	StatusPending Status = "pending"
	// StatusApproved is terminal: the account may authenticate.
	StatusApproved Status = "approved"
	// StatusRejected is terminal: the account may never authenticate.
	StatusRejected Status = "rejected"
)

// Valid reports whether the status is a known value.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// InvalidTransitionError reports an illegal approval state change.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// CanTransition reports whether from -> to is a legal approval transition.
// Only pending accounts move; approved and rejected are terminal.
func CanTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusRejected
}

// Transition applies an approval decision to the user, stamping UpdatedAt.
// It returns InvalidTransitionError when the current status is terminal or
// the target status is not a decision state.
func (u *User) Transition(to Status, now time.Time) error {
	if !CanTransition(u.Status, to) {
		return &InvalidTransitionError{From: u.Status, To: to}
	}
	u.Status = to
	u.UpdatedAt = now
	return nil
}
