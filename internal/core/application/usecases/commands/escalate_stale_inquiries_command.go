package commands

import (
	"errors"
	"time"

	"scribeassist/internal/pkg/guard"
)

var (
	ErrEscalateStaleInquiriesCommandIsNotConstructed = errors.New(
		"EscalateStaleInquiriesCommand must be created via NewEscalateStaleInquiriesCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// EscalateStaleInquiriesCommand represents the scheduled sweep over
// unanswered inquiries: everything still New and older than maxAge gets its
// priority bumped one step. Issued by the job scheduler, not by a user, so
// it carries no Actor.
type EscalateStaleInquiriesCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewEscalateStaleInquiriesCommand creates a command to escalate stale
// inquiries.
func NewEscalateStaleInquiriesCommand(maxAge time.Duration) (EscalateStaleInquiriesCommand, error) {
	if maxAge <= 0 {
		return EscalateStaleInquiriesCommand{}, ErrMaxAgeIsInvalid
	}

	return EscalateStaleInquiriesCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateStaleInquiriesCommand) Validate() error {
	return c.guard.Validate(ErrEscalateStaleInquiriesCommandIsNotConstructed)
}

// MaxAge returns how long an inquiry may stay New before escalation.
func (c EscalateStaleInquiriesCommand) MaxAge() time.Duration {
	return c.maxAge
}
