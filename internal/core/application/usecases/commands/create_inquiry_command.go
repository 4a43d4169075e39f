package commands

import (
	"errors"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/guard"
)

var (
	ErrCreateInquiryCommandIsNotConstructed = errors.New(
		"CreateInquiryCommand must be created via NewCreateInquiryCommand constructor",
	)
	ErrInquiryNameIsRequired    = errors.New("name is required")
	ErrInquiryEmailIsRequired   = errors.New("email is required")
	ErrInquirySubjectIsRequired = errors.New("subject is required")
	ErrInquiryMessageIsRequired = errors.New("message is required")
)

// CreateInquiryCommand represents a contact-form submission. It is the one
// order-side command with no Actor: anonymous visitors submit inquiries, and
// an authenticated submitter is linked through the optional user ID.
type CreateInquiryCommand struct { //nolint:recvcheck //using for validation
	inquiryID kernel.UUID
	name      string
	email     string
	subject   string
	message   string
	source    string
	userID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateInquiryCommand creates a command to submit an inquiry. Presence
// is checked here; format rules (email shape, message length floor) are the
// aggregate's.
func NewCreateInquiryCommand(inquiryID kernel.UUID, name, email, subject, message, source string, userID *kernel.UUID) (CreateInquiryCommand, error) {
	cmd := CreateInquiryCommand{
		source: source,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInquiryID(inquiryID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setSubject(subject),
		cmd.setMessage(message),
		cmd.setUserID(userID),
	); err != nil {
		return CreateInquiryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInquiryCommand) Validate() error {
	return c.guard.Validate(ErrCreateInquiryCommandIsNotConstructed)
}

// InquiryID returns the unique identifier for the new inquiry.
func (c CreateInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

// Name returns the submitter's name.
func (c CreateInquiryCommand) Name() string {
	return c.name
}

// Email returns the submitter's contact address.
func (c CreateInquiryCommand) Email() string {
	return c.email
}

// Subject returns the inquiry subject line.
func (c CreateInquiryCommand) Subject() string {
	return c.subject
}

// Message returns the inquiry body.
func (c CreateInquiryCommand) Message() string {
	return c.message
}

// Source returns the page or channel the inquiry came from.
func (c CreateInquiryCommand) Source() string {
	return c.source
}

// UserID returns the linked submitter, or nil for anonymous inquiries.
func (c CreateInquiryCommand) UserID() *kernel.UUID {
	return c.userID
}

func (c *CreateInquiryCommand) setInquiryID(inquiryID kernel.UUID) error {
	if err := inquiryID.Validate(); err != nil {
		return err
	}

	c.inquiryID = inquiryID
	return nil
}

func (c *CreateInquiryCommand) setName(name string) error {
	if name == "" {
		return ErrInquiryNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateInquiryCommand) setEmail(email string) error {
	if email == "" {
		return ErrInquiryEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateInquiryCommand) setSubject(subject string) error {
	if subject == "" {
		return ErrInquirySubjectIsRequired
	}

	c.subject = subject
	return nil
}

func (c *CreateInquiryCommand) setMessage(message string) error {
	if message == "" {
		return ErrInquiryMessageIsRequired
	}

	c.message = message
	return nil
}

func (c *CreateInquiryCommand) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}

	linked := *userID
	c.userID = &linked
	return nil
}
