package inquiry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"
)

// ErrInquiryIsNotConstructed is returned when an Inquiry instance was not
// created through NewInquiry or RestoreInquiry.
var ErrInquiryIsNotConstructed = errors.New("Inquiry must be created via NewInquiry or RestoreInquiry")

const messageMinLength = 10

// Inquiry is a contact-form submission. It may be linked to a registered
// user, but that link grants the submitter no access to the inquiry: only
// admins read and mutate inquiries.
type Inquiry struct {
	id          kernel.UUID
	name        string
	email       string
	subject     string
	message     string
	source      string
	userID      *kernel.UUID
	status      Status
	priority    Priority
	notes       string
	respondedAt *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewInquiry creates a new Inquiry in the New status with Normal priority.
// The optional userID links an authenticated submitter; source records which
// page or channel the inquiry came from.
func NewInquiry(id kernel.UUID, name, email, subject, message, source string, userID *kernel.UUID, createdAt time.Time) (*Inquiry, error) {
	inq := &Inquiry{
		status:        New,
		priority:      Normal,
		source:        source,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		inq.setID(id),
		inq.setName(name),
		inq.setEmail(email),
		inq.setSubject(subject),
		inq.setMessage(message),
	); err != nil {
		return nil, err
	}

	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
		linked := *userID
		inq.userID = &linked
	}

	return inq, nil
}

// RestoreInquiry reconstructs an inquiry from persistence.
func RestoreInquiry(
	id kernel.UUID,
	name, email, subject, message, source string,
	userID *kernel.UUID,
	status Status,
	priority Priority,
	notes string,
	respondedAt *time.Time,
	createdAt time.Time,
) (*Inquiry, error) {
	inq, err := NewInquiry(id, name, email, subject, message, source, userID, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), priority.Validate()); err != nil {
		return nil, err
	}

	// respondedAt is set iff the inquiry has left New at least once.
	if (respondedAt == nil) != (status == New) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"respondedAt",
			fmt.Errorf("stamp does not match status %s", status),
		)
	}

	inq.status = status
	inq.priority = priority
	inq.notes = notes
	if respondedAt != nil {
		stamp := *respondedAt
		inq.respondedAt = &stamp
	}

	return inq, nil
}

// Validate ensures the Inquiry was created via a constructor.
func (i *Inquiry) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInquiryIsNotConstructed
	}
	return nil
}

// ID returns the inquiry's unique identifier.
func (i *Inquiry) ID() kernel.UUID {
	return i.id
}

// Name returns the submitter's name.
func (i *Inquiry) Name() string {
	return i.name
}

// Email returns the submitter's contact address.
func (i *Inquiry) Email() string {
	return i.email
}

// Subject returns the inquiry subject line.
func (i *Inquiry) Subject() string {
	return i.subject
}

// Message returns the inquiry body.
func (i *Inquiry) Message() string {
	return i.message
}

// Source returns the page or channel the inquiry came from.
func (i *Inquiry) Source() string {
	return i.source
}

// UserID returns the linked submitter, or nil for anonymous inquiries.
func (i *Inquiry) UserID() *kernel.UUID {
	return i.userID
}

// Status returns the current handling status.
func (i *Inquiry) Status() Status {
	return i.status
}

// Priority returns the triage priority.
func (i *Inquiry) Priority() Priority {
	return i.priority
}

// Notes returns the back-office notes.
func (i *Inquiry) Notes() string {
	return i.notes
}

// RespondedAt returns the first-response stamp, or nil while the inquiry is
// still New.
func (i *Inquiry) RespondedAt() *time.Time {
	if i.respondedAt == nil {
		return nil
	}
	stamp := *i.respondedAt
	return &stamp
}

// CreatedAt returns the submission time.
func (i *Inquiry) CreatedAt() time.Time {
	return i.createdAt
}

// ChangeStatus moves the inquiry to target. The first move away from New
// stamps respondedAt with the supplied time; later status changes never
// touch the stamp again.
func (i *Inquiry) ChangeStatus(target Status, at time.Time) error {
	newStatus, err := i.status.TransitionTo(target)
	if err != nil {
		return err
	}

	i.status = newStatus
	if i.respondedAt == nil && newStatus != New {
		stamp := at
		i.respondedAt = &stamp
	}
	return nil
}

// ChangePriority sets the triage priority.
func (i *Inquiry) ChangePriority(target Priority) error {
	if err := target.Validate(); err != nil {
		return err
	}
	i.priority = target
	return nil
}

// Escalate bumps the priority one step, capped at Urgent. Returns true when
// the priority actually changed.
func (i *Inquiry) Escalate() bool {
	bumped := i.priority.Bump()
	if bumped == i.priority {
		return false
	}
	i.priority = bumped
	return true
}

// SetNotes replaces the back-office notes.
func (i *Inquiry) SetNotes(notes string) {
	i.notes = notes
}

func (i *Inquiry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Inquiry) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Inquiry) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not an email address", email),
		)
	}
	i.email = email
	return nil
}

func (i *Inquiry) setSubject(subject string) error {
	if strings.TrimSpace(subject) == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	i.subject = subject
	return nil
}

func (i *Inquiry) setMessage(message string) error {
	if len(message) < messageMinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"message",
			fmt.Errorf("must be at least %d characters", messageMinLength),
		)
	}
	i.message = message
	return nil
}
