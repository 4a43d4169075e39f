package inquiry

import (
	"fmt"

	"scribeassist/internal/pkg/errs"
)

// Priority is the back-office triage level of an inquiry.
type Priority int

const (
	PriorityUnknown Priority = iota

	Low
	Normal
	High
	Urgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "unknown",
		Low:             "low",
		Normal:          "normal",
		High:            "high",
		Urgent:          "urgent",
	}
}

// PriorityFromString parses the wire representation of a priority.
func PriorityFromString(s string) (Priority, error) {
	for p, str := range getPriorityStrings() {
		if str == s && p != PriorityUnknown {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"inquiry priority",
		fmt.Errorf("%q is not a known inquiry priority", s),
	)
}

// String returns the snake_case name used in APIs and storage.
func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects PriorityUnknown and out-of-range values.
func (p Priority) Validate() error {
	if p <= PriorityUnknown || p > Urgent {
		return errs.NewValueIsInvalidErrorWithCause(
			"inquiry priority",
			fmt.Errorf("%d is not a valid inquiry priority", p),
		)
	}
	return nil
}

// Bump returns the next priority up, capped at Urgent. Used by the
// escalation job for inquiries that sit unanswered.
func (p Priority) Bump() Priority {
	if p.Validate() != nil || p == Urgent {
		return p
	}
	return p + 1
}
