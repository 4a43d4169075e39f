package commands

import (
	"errors"
	"time"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeadlineIsRequired = errors.New("deadline is required")
)

// CreateOrderCommand represents a customer's request to place a new writing
// order. The price quote and the order number are not part of the command:
// both are derived by the handler at execution time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         account.Actor
	orderID       kernel.UUID
	title         string
	description   string
	subject       string
	academicLevel order.AcademicLevel
	paperType     order.PaperType
	pageCount     int
	words         int
	deadline      time.Time
	requirements  string
	attachments   []string

	guard guard.ConstructorGuard
}

// CreateOrderParams carries the inputs for NewCreateOrderCommand.
type CreateOrderParams struct {
	Actor         account.Actor
	OrderID       kernel.UUID
	Title         string
	Description   string
	Subject       string
	AcademicLevel order.AcademicLevel
	PaperType     order.PaperType
	PageCount     int
	Words         int
	Deadline      time.Time
	Requirements  string
	Attachments   []string
}

// NewCreateOrderCommand creates a command to place a new order. Enum values
// and identifiers are checked here; content rules (length floors, deadline
// in the future) are the aggregate's and stay there.
func NewCreateOrderCommand(p CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		title:        p.Title,
		description:  p.Description,
		subject:      p.Subject,
		pageCount:    p.PageCount,
		words:        p.Words,
		requirements: p.Requirements,
		attachments:  append([]string(nil), p.Attachments...),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(p.Actor),
		cmd.setOrderID(p.OrderID),
		cmd.setAcademicLevel(p.AcademicLevel),
		cmd.setPaperType(p.PaperType),
		cmd.setDeadline(p.Deadline),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the customer placing the order.
func (c CreateOrderCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Title returns the order title.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// Description returns the order description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Subject returns the academic subject.
func (c CreateOrderCommand) Subject() string {
	return c.subject
}

// AcademicLevel returns the pricing tier.
func (c CreateOrderCommand) AcademicLevel() order.AcademicLevel {
	return c.academicLevel
}

// PaperType returns the kind of work ordered.
func (c CreateOrderCommand) PaperType() order.PaperType {
	return c.paperType
}

// PageCount returns the ordered number of pages.
func (c CreateOrderCommand) PageCount() int {
	return c.pageCount
}

// Words returns the optional word count.
func (c CreateOrderCommand) Words() int {
	return c.words
}

// Deadline returns the requested delivery deadline.
func (c CreateOrderCommand) Deadline() time.Time {
	return c.deadline
}

// Requirements returns the free-form customer requirements.
func (c CreateOrderCommand) Requirements() string {
	return c.requirements
}

// Attachments returns the attachment references.
func (c CreateOrderCommand) Attachments() []string {
	return append([]string(nil), c.attachments...)
}

func (c *CreateOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setAcademicLevel(level order.AcademicLevel) error {
	if err := level.Validate(); err != nil {
		return err
	}

	c.academicLevel = level
	return nil
}

func (c *CreateOrderCommand) setPaperType(pt order.PaperType) error {
	if err := pt.Validate(); err != nil {
		return err
	}

	c.paperType = pt
	return nil
}

func (c *CreateOrderCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return ErrDeadlineIsRequired
	}

	c.deadline = deadline
	return nil
}
