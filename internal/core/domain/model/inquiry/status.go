package inquiry

import (
	"fmt"

	"scribeassist/internal/pkg/errs"
)

// Status is the handling state of an inquiry.
//
// New is the unique entry state. Once an inquiry has left New it may move
// freely between InProgress, Resolved, and Closed, but it can never return
// to New.
type Status int

const (
	StatusUnknown Status = iota

	New
	InProgress
	Resolved
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		New:           "new",
		InProgress:    "in_progress",
		Resolved:      "resolved",
		Closed:        "closed",
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
		"inquiry status",
		fmt.Errorf("%q is not a known inquiry status", s),
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
	if s <= StatusUnknown || s > Closed {
		return errs.NewValueIsInvalidErrorWithCause(
			"inquiry status",
			fmt.Errorf("%d is not a valid inquiry status", s),
		)
	}
	return nil
}

// CanTransitionTo reports whether target is reachable from s. Every move is
// legal except re-entering New.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	return target != New
}

// TransitionTo returns target if the edge is legal, or an
// InvalidTransitionError carrying both states otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("inquiry status", s.String(), target.String())
	}
	return target, nil
}
