package commands

import (
	"errors"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/inquiry"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/guard"
)

var (
	ErrUpdateInquiryCommandIsNotConstructed = errors.New(
		"UpdateInquiryCommand must be created via NewUpdateInquiryCommand constructor",
	)
	ErrInquiryUpdateIsEmpty = errors.New("inquiry update must change at least one field")
)

// UpdateInquiryCommand represents a back-office update to an inquiry: a
// patch over status, priority, and notes. Nil fields stay untouched.
type UpdateInquiryCommand struct { //nolint:recvcheck //using for validation
	actor     account.Actor
	inquiryID kernel.UUID
	status    *inquiry.Status
	priority  *inquiry.Priority
	notes     *string

	guard guard.ConstructorGuard
}

// NewUpdateInquiryCommand creates a command to update an inquiry.
func NewUpdateInquiryCommand(actor account.Actor, inquiryID kernel.UUID, status *inquiry.Status, priority *inquiry.Priority, notes *string) (UpdateInquiryCommand, error) {
	cmd := UpdateInquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if status == nil && priority == nil && notes == nil {
		return UpdateInquiryCommand{}, ErrInquiryUpdateIsEmpty
	}

	if err := errors.Join(
		actor.Validate(),
		inquiryID.Validate(),
		validateIfSet(status),
		validateIfSet(priority),
	); err != nil {
		return UpdateInquiryCommand{}, err
	}

	cmd.actor = actor
	cmd.inquiryID = inquiryID
	cmd.status = copyPtr(status)
	cmd.priority = copyPtr(priority)
	cmd.notes = copyPtr(notes)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInquiryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInquiryCommandIsNotConstructed)
}

// Actor returns the caller.
func (c UpdateInquiryCommand) Actor() account.Actor {
	return c.actor
}

// InquiryID returns the target inquiry's identifier.
func (c UpdateInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

// Status returns the requested status, or nil to leave it unchanged.
func (c UpdateInquiryCommand) Status() *inquiry.Status {
	return c.status
}

// Priority returns the requested priority, or nil to leave it unchanged.
func (c UpdateInquiryCommand) Priority() *inquiry.Priority {
	return c.priority
}

// Notes returns the replacement notes, or nil to leave them unchanged.
func (c UpdateInquiryCommand) Notes() *string {
	return c.notes
}

type validator interface {
	Validate() error
}

func validateIfSet[T validator](v *T) error {
	if v == nil {
		return nil
	}
	return (*v).Validate()
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
