package order

import (
	"errors"
	"fmt"
	"time"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Content length floors carried over from the public order form.
const (
	titleMinLength       = 5
	descriptionMinLength = 20
	subjectMinLength     = 2
)

// RepriceFunc recomputes a price quote for the given page count. The
// aggregate calls it whenever a content edit changes the page count, using
// the order's stored deadline on the caller side.
type RepriceFunc func(pageCount int) (Quote, error)

// ContentEdit is a patch of the customer-editable fields of an order.
// Nil pointers (and a nil Attachments slice) mean "leave unchanged".
//
// Explicit named patches instead of free-form field maps keep each update
// operation tied to its own authorization rule.
type ContentEdit struct {
	Title        *string
	Description  *string
	Subject      *string
	PageCount    *int
	Words        *int
	Requirements *string
	Attachments  []string
	Notes        *string
}

// IsEmpty reports whether the edit changes nothing.
func (e ContentEdit) IsEmpty() bool {
	return e.Title == nil && e.Description == nil && e.Subject == nil &&
		e.PageCount == nil && e.Words == nil && e.Requirements == nil &&
		e.Attachments == nil && e.Notes == nil
}

// Order is the aggregate root for a customer's writing order. It manages the
// lifecycle from submission through completion or cancellation, carries the
// priced quote, and enforces its own consistency rules.
//
// Invariants:
//   - the order number is assigned at creation and never changes
//   - status transitions follow the Status state machine
//   - a page-count change always goes through a reprice
//   - completedAt is stamped once, on first entering Completed
type Order struct {
	id             kernel.UUID
	number         Number
	customerID     kernel.UUID
	title          string
	description    string
	subject        string
	academicLevel  AcademicLevel
	paperType      PaperType
	pageCount      int
	words          int
	deadline       time.Time
	quote          Quote
	status         Status
	paymentStatus  PaymentStatus
	assignedWriter *kernel.UUID
	requirements   string
	attachments    []string
	notes          string
	completedAt    *time.Time
	createdAt      time.Time

	isConstructed bool
}

// NewOrderParams carries the creation-time inputs for an order.
type NewOrderParams struct {
	ID            kernel.UUID
	Number        Number
	CustomerID    kernel.UUID
	Title         string
	Description   string
	Subject       string
	AcademicLevel AcademicLevel
	PaperType     PaperType
	PageCount     int
	Words         int
	Deadline      time.Time
	Requirements  string
	Attachments   []string
	Quote         Quote
	CreatedAt     time.Time
}

// NewOrder creates a new Order in Pending status with pending payment.
// The deadline must lie strictly after the creation time; a deadline in the
// past is a creation-time validation error, never silently accepted.
func NewOrder(p NewOrderParams) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		createdAt:     p.CreatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setNumber(p.Number),
		o.setCustomerID(p.CustomerID),
		o.setTitle(p.Title),
		o.setDescription(p.Description),
		o.setSubject(p.Subject),
		o.setAcademicLevel(p.AcademicLevel),
		o.setPaperType(p.PaperType),
		o.setPageCount(p.PageCount),
		o.setWords(p.Words),
		o.setDeadline(p.Deadline, p.CreatedAt),
		o.setQuote(p.Quote),
	); err != nil {
		return nil, err
	}

	o.requirements = p.Requirements
	o.attachments = append([]string(nil), p.Attachments...)

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order.
type RestoreOrderParams struct {
	NewOrderParams
	Status         Status
	PaymentStatus  PaymentStatus
	AssignedWriter *kernel.UUID
	Notes          string
	CompletedAt    *time.Time
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time rules (a stored deadline may by now be in the past).
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		isConstructed: true,
		createdAt:     p.CreatedAt,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setNumber(p.Number),
		o.setCustomerID(p.CustomerID),
		o.setTitle(p.Title),
		o.setDescription(p.Description),
		o.setSubject(p.Subject),
		o.setAcademicLevel(p.AcademicLevel),
		o.setPaperType(p.PaperType),
		o.setPageCount(p.PageCount),
		o.setWords(p.Words),
		o.setQuote(p.Quote),
		p.Status.Validate(),
		p.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if p.AssignedWriter != nil {
		if err := p.AssignedWriter.Validate(); err != nil {
			return nil, err
		}
		writer := *p.AssignedWriter
		o.assignedWriter = &writer
	}

	o.deadline = p.Deadline
	o.status = p.Status
	o.paymentStatus = p.PaymentStatus
	o.requirements = p.Requirements
	o.attachments = append([]string(nil), p.Attachments...)
	o.notes = p.Notes
	if p.CompletedAt != nil {
		completed := *p.CompletedAt
		o.completedAt = &completed
	}

	return o, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the customer-facing order number.
func (o *Order) Number() Number {
	return o.number
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Title returns the order title.
func (o *Order) Title() string {
	return o.title
}

// Description returns the order description.
func (o *Order) Description() string {
	return o.description
}

// Subject returns the academic subject.
func (o *Order) Subject() string {
	return o.subject
}

// AcademicLevel returns the pricing tier.
func (o *Order) AcademicLevel() AcademicLevel {
	return o.academicLevel
}

// PaperType returns the kind of work ordered.
func (o *Order) PaperType() PaperType {
	return o.paperType
}

// PageCount returns the ordered number of pages.
func (o *Order) PageCount() int {
	return o.pageCount
}

// Words returns the optional word count (0 when unset).
func (o *Order) Words() int {
	return o.words
}

// Deadline returns the absolute delivery deadline.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// Quote returns the currently effective price quote.
func (o *Order) Quote() Quote {
	return o.quote
}

// TotalPrice returns the rounded order total in INR.
func (o *Order) TotalPrice() int {
	return o.quote.TotalPrice()
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// AssignedWriter returns the assigned writer's ID, or nil when unassigned.
func (o *Order) AssignedWriter() *kernel.UUID {
	return o.assignedWriter
}

// Requirements returns the free-form customer requirements.
func (o *Order) Requirements() string {
	return o.requirements
}

// Attachments returns the stored attachment references.
func (o *Order) Attachments() []string {
	return append([]string(nil), o.attachments...)
}

// Notes returns the back-office notes.
func (o *Order) Notes() string {
	return o.notes
}

// CompletedAt returns the completion timestamp, or nil.
func (o *Order) CompletedAt() *time.Time {
	if o.completedAt == nil {
		return nil
	}
	stamp := *o.completedAt
	return &stamp
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order along a legal status edge. Entering Completed
// stamps the completion timestamp exactly once; since Completed is never
// re-enterable, an existing stamp is never overwritten.
func (o *Order) ChangeStatus(target Status, at time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Completed && o.completedAt == nil {
		stamp := at
		o.completedAt = &stamp
	}
	return nil
}

// Cancel moves the order to Cancelled following the same state machine as
// ChangeStatus. Cancellation is legal only from Pending or Confirmed.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ChangePayment sets the payment status.
func (o *Order) ChangePayment(target PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	o.paymentStatus = target
	return nil
}

// AssignWriter records the writer working the order. Reassignment is
// allowed; clearing is not.
func (o *Order) AssignWriter(writerID kernel.UUID) error {
	if err := writerID.Validate(); err != nil {
		return err
	}
	o.assignedWriter = &writerID
	return nil
}

// ApplyContentEdit applies a content patch. When the patch changes the page
// count, reprice is invoked with the new count and the resulting quote is
// applied together with it, so a page-count change can never be persisted
// without its recomputed price.
func (o *Order) ApplyContentEdit(edit ContentEdit, reprice RepriceFunc) error {
	if edit.IsEmpty() {
		return errs.NewValueIsRequiredError("content edit")
	}

	staged := *o
	if err := errors.Join(
		applyIfSet(edit.Title, staged.setTitle),
		applyIfSet(edit.Description, staged.setDescription),
		applyIfSet(edit.Subject, staged.setSubject),
		applyIfSet(edit.PageCount, staged.setPageCount),
		applyIfSet(edit.Words, staged.setWords),
	); err != nil {
		return err
	}

	if edit.PageCount != nil && *edit.PageCount != o.pageCount {
		if reprice == nil {
			return errs.NewValueIsRequiredError("reprice function")
		}
		quote, err := reprice(*edit.PageCount)
		if err != nil {
			return err
		}
		if err = staged.setQuote(quote); err != nil {
			return err
		}
	}

	if edit.Requirements != nil {
		staged.requirements = *edit.Requirements
	}
	if edit.Attachments != nil {
		staged.attachments = append([]string(nil), edit.Attachments...)
	}
	if edit.Notes != nil {
		staged.notes = *edit.Notes
	}

	*o = staged
	return nil
}

func applyIfSet[T any](v *T, set func(T) error) error {
	if v == nil {
		return nil
	}
	return set(*v)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(n Number) error {
	if err := n.Validate(); err != nil {
		return err
	}
	o.number = n
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setTitle(title string) error {
	if len(title) < titleMinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"title",
			fmt.Errorf("must be at least %d characters", titleMinLength),
		)
	}
	o.title = title
	return nil
}

func (o *Order) setDescription(description string) error {
	if len(description) < descriptionMinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"description",
			fmt.Errorf("must be at least %d characters", descriptionMinLength),
		)
	}
	o.description = description
	return nil
}

func (o *Order) setSubject(subject string) error {
	if len(subject) < subjectMinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"subject",
			fmt.Errorf("must be at least %d characters", subjectMinLength),
		)
	}
	o.subject = subject
	return nil
}

func (o *Order) setAcademicLevel(level AcademicLevel) error {
	if err := level.Validate(); err != nil {
		return err
	}
	o.academicLevel = level
	return nil
}

func (o *Order) setPaperType(pt PaperType) error {
	if err := pt.Validate(); err != nil {
		return err
	}
	o.paperType = pt
	return nil
}

func (o *Order) setPageCount(pageCount int) error {
	if pageCount < 1 {
		return errs.NewValueIsOutOfRangeError("pageCount", pageCount, 1, maxPageCount)
	}
	if pageCount > maxPageCount {
		return errs.NewValueIsOutOfRangeError("pageCount", pageCount, 1, maxPageCount)
	}
	o.pageCount = pageCount
	return nil
}

func (o *Order) setWords(words int) error {
	if words < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"words",
			fmt.Errorf("%d is negative", words),
		)
	}
	o.words = words
	return nil
}

func (o *Order) setDeadline(deadline, createdAt time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}
	if !deadline.After(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deadline",
			fmt.Errorf("%s is not in the future", deadline.Format(time.RFC3339)),
		)
	}
	o.deadline = deadline
	return nil
}

func (o *Order) setQuote(q Quote) error {
	if err := q.Validate(); err != nil {
		return err
	}
	o.quote = q
	return nil
}

// maxPageCount caps the order form the same way the public site does.
const maxPageCount = 1000
