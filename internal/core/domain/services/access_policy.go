package services

import (
	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/pkg/errs"
)

// Action names an operation an actor may attempt. The string value doubles
// as the action label in Forbidden errors.
type Action string

const (
	ActionViewOrder         Action = "view order"
	ActionEditOrderContent  Action = "edit order content"
	ActionChangeOrderStatus Action = "change order status"
	ActionChangePayment     Action = "change payment status"
	ActionAssignWriter      Action = "assign writer"
	ActionCancelOrder       Action = "cancel order"
	ActionDeleteOrder       Action = "delete order"
	ActionManageInquiries   Action = "manage inquiries"
	ActionManagePosts       Action = "manage posts"
	ActionViewDashboard     Action = "view dashboard"
)

// AccessPolicy is the role-based authorization predicate. A nil return
// means allow; otherwise the error says why.
//
// Two deliberate asymmetries:
//   - Owner-scoped order actions deny a non-owner customer with NotFound,
//     not Forbidden, so a customer cannot tell a foreign order from a
//     missing one.
//   - Status checks are not duplicated here. The policy answers "may this
//     actor attempt this action", the state machine answers "is this move
//     legal right now", so a customer cancelling an already-cancelled order
//     gets InvalidTransition, not Forbidden.
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// AuthorizeOrder decides whether actor may perform action on the order.
func (AccessPolicy) AuthorizeOrder(actor account.Actor, action Action, ord *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := ord.Validate(); err != nil {
		return err
	}

	if actor.IsAdmin() {
		return nil
	}

	switch action {
	case ActionViewOrder:
		if !actor.Owns(ord.CustomerID()) {
			return errs.NewObjectNotFoundError("order", ord.ID().String())
		}
		return nil

	case ActionEditOrderContent:
		if !actor.Owns(ord.CustomerID()) {
			return errs.NewObjectNotFoundError("order", ord.ID().String())
		}
		if ord.Status() != order.Pending {
			return errs.NewForbiddenError(string(action), "customers may only edit pending orders")
		}
		return nil

	case ActionCancelOrder:
		if !actor.Owns(ord.CustomerID()) {
			return errs.NewObjectNotFoundError("order", ord.ID().String())
		}
		return nil

	case ActionChangeOrderStatus, ActionChangePayment, ActionAssignWriter, ActionDeleteOrder:
		return errs.NewForbiddenError(string(action), "admin role required")

	default:
		return errs.NewForbiddenError(string(action), "unknown action")
	}
}

// Authorize decides resource-independent actions (back-office surfaces).
func (AccessPolicy) Authorize(actor account.Actor, action Action) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsAdmin() {
		return nil
	}
	return errs.NewForbiddenError(string(action), "admin role required")
}
