package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"scribeassist/internal/core/domain/model/account"
)

// bcryptCost is deliberately above the library default; registration is
// rare enough that the extra hashing time is not felt.
const bcryptCost = 12

// RegisterCustomerCommandHandler handles customer sign-up. The password is
// bcrypt-hashed here and never stored raw; a taken email surfaces as a
// Conflict from the unique constraint on the users table.
type RegisterCustomerCommandHandler struct {
	uowFactory UserUoWFactory
	clock      Clock
}

// NewRegisterCustomerCommandHandler creates a handler for registration.
func NewRegisterCustomerCommandHandler(uowFactory UserUoWFactory, clock Clock) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the registration and returns the created user.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (*account.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := account.NewUser(
		cmd.UserID(),
		cmd.Email(),
		cmd.Name(),
		string(hash),
		account.Customer,
		h.clock(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
