package commands

import (
	"errors"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/pkg/guard"
)

var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

// ChangePaymentStatusCommand represents a back-office request to record a
// payment state change on an order.
type ChangePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID
	target  order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewChangePaymentStatusCommand creates a command to change an order's
// payment status.
func NewChangePaymentStatusCommand(actor account.Actor, orderID kernel.UUID, target order.PaymentStatus) (ChangePaymentStatusCommand, error) {
	cmd := ChangePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		target.Validate(),
	); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = orderID
	cmd.target = target
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

// Actor returns the caller.
func (c ChangePaymentStatusCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the target order's identifier.
func (c ChangePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested payment status.
func (c ChangePaymentStatusCommand) Target() order.PaymentStatus {
	return c.target
}
