package commands

import (
	"errors"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/pkg/guard"
)

var (
	ErrUpdateOrderContentCommandIsNotConstructed = errors.New(
		"UpdateOrderContentCommand must be created via NewUpdateOrderContentCommand constructor",
	)
	ErrContentEditIsEmpty = errors.New("content edit must change at least one field")
)

// UpdateOrderContentCommand represents a request to edit the content fields
// of an existing order. The edit is a patch: nil fields stay untouched.
type UpdateOrderContentCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID
	edit    order.ContentEdit

	guard guard.ConstructorGuard
}

// NewUpdateOrderContentCommand creates a command to edit order content.
// An edit that changes nothing is rejected up front.
func NewUpdateOrderContentCommand(actor account.Actor, orderID kernel.UUID, edit order.ContentEdit) (UpdateOrderContentCommand, error) {
	cmd := UpdateOrderContentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setEdit(edit),
	); err != nil {
		return UpdateOrderContentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderContentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderContentCommandIsNotConstructed)
}

// Actor returns the caller.
func (c UpdateOrderContentCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the target order's identifier.
func (c UpdateOrderContentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Edit returns the content patch.
func (c UpdateOrderContentCommand) Edit() order.ContentEdit {
	return c.edit
}

func (c *UpdateOrderContentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderContentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderContentCommand) setEdit(edit order.ContentEdit) error {
	if edit.IsEmpty() {
		return ErrContentEditIsEmpty
	}

	c.edit = edit
	return nil
}
