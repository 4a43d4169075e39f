package commands

import (
	"errors"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/guard"
)

// passwordMinLength is the floor for raw passwords at registration.
const passwordMinLength = 8

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrNameIsRequired     = errors.New("name is required")
	ErrPasswordIsTooShort = errors.New("password must be at least 8 characters")
)

// RegisterCustomerCommand represents a visitor signing up for a customer
// account. The raw password lives only in this command; the handler hashes
// it and the aggregate stores the hash.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	name     string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
func NewRegisterCustomerCommand(userID kernel.UUID, email, name, password string) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setEmail(email),
		cmd.setName(name),
		cmd.setPassword(password),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// UserID returns the unique identifier for the new account.
func (c RegisterCustomerCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the login address.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Name returns the display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Password returns the raw password.
func (c RegisterCustomerCommand) Password() string {
	return c.password
}

func (c *RegisterCustomerCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setPassword(password string) error {
	if len(password) < passwordMinLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}
