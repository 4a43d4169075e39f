package commands

import (
	"errors"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/guard"
)

var ErrAssignWriterCommandIsNotConstructed = errors.New(
	"AssignWriterCommand must be created via NewAssignWriterCommand constructor",
)

// AssignWriterCommand represents a back-office request to put a writer on an
// order. Reassignment replaces the previous writer.
type AssignWriterCommand struct { //nolint:recvcheck //using for validation
	actor    account.Actor
	orderID  kernel.UUID
	writerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWriterCommand creates a command to assign a writer.
func NewAssignWriterCommand(actor account.Actor, orderID, writerID kernel.UUID) (AssignWriterCommand, error) {
	cmd := AssignWriterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		writerID.Validate(),
	); err != nil {
		return AssignWriterCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = orderID
	cmd.writerID = writerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWriterCommand) Validate() error {
	return c.guard.Validate(ErrAssignWriterCommandIsNotConstructed)
}

// Actor returns the caller.
func (c AssignWriterCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the target order's identifier.
func (c AssignWriterCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WriterID returns the writer to assign.
func (c AssignWriterCommand) WriterID() kernel.UUID {
	return c.writerID
}
