package commands

import (
	"errors"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/guard"
)

var ErrDeleteInquiryCommandIsNotConstructed = errors.New(
	"DeleteInquiryCommand must be created via NewDeleteInquiryCommand constructor",
)

// DeleteInquiryCommand represents a back-office request to remove an inquiry.
type DeleteInquiryCommand struct { //nolint:recvcheck //using for validation
	actor     account.Actor
	inquiryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteInquiryCommand creates a command to delete an inquiry.
func NewDeleteInquiryCommand(actor account.Actor, inquiryID kernel.UUID) (DeleteInquiryCommand, error) {
	cmd := DeleteInquiryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.Validate(), inquiryID.Validate()); err != nil {
		return DeleteInquiryCommand{}, err
	}

	cmd.actor = actor
	cmd.inquiryID = inquiryID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteInquiryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInquiryCommandIsNotConstructed)
}

// Actor returns the caller.
func (c DeleteInquiryCommand) Actor() account.Actor {
	return c.actor
}

// InquiryID returns the inquiry to delete.
func (c DeleteInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}
