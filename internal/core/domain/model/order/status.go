package order

import (
	"fmt"

	"scribeassist/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It implements a state machine
// with a fixed set of legal edges:
//
//	pending ──> confirmed ──> in_progress ──> review ──> completed
//	   │            │
//	   └────────────┴──> cancelled
//
// Any status except refunded may additionally move to refunded; that edge is
// reserved for admin action at the application layer. completed and cancelled
// admit only the refund edge, and refunded admits none, which makes all three
// effectively terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	Pending
	Confirmed
	InProgress
	Review
	Completed
	Cancelled
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Confirmed:     "confirmed",
		InProgress:    "in_progress",
		Review:        "review",
		Completed:     "completed",
		Cancelled:     "cancelled",
		Refunded:      "refunded",
	}
}

// forwardEdges lists the legal transitions per status, excluding the
// universal refund edge which TransitionTo handles separately.
func forwardEdges() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {InProgress, Cancelled},
		InProgress: {Review},
		Review:     {Completed},
		Completed:  {},
		Cancelled:  {},
		Refunded:   {},
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a known order status", s),
	)
}

// String returns the snake_case name used in APIs and storage.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// IsTerminal reports whether no forward progress is possible from s.
// Refund remains reachable from completed and cancelled; only refunded
// admits no transition at all.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Refunded
}

// CanTransitionTo reports whether target is a legal edge from s.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if target == Refunded {
		return s != Refunded
	}
	for _, next := range forwardEdges()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the edge s -> target is legal, or an
// InvalidTransitionError carrying both states otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("order status", s.String(), target.String())
	}
	return target, nil
}
