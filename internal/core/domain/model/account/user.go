package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a registered account. The password is stored only as a bcrypt
// hash; hashing happens in the application layer, the aggregate just refuses
// to hold an empty hash.
type User struct {
	id           kernel.UUID
	email        string
	name         string
	passwordHash string
	role         Role
	active       bool
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates an active user with the given role.
func NewUser(id kernel.UUID, email, name, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	u := &User{
		active:        true,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email, name, passwordHash string, role Role, active bool, createdAt time.Time) (*User, error) {
	u, err := NewUser(id, email, name, passwordHash, role, createdAt)
	if err != nil {
		return nil, err
	}
	u.active = active
	return u, nil
}

// Validate ensures the User was created via a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the login address.
func (u *User) Email() string {
	return u.email
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.active
}

// CreatedAt returns the registration time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Actor returns the Actor identity of this user.
func (u *User) Actor() Actor {
	return Actor{id: u.id, role: u.role}
}

// Deactivate blocks the account from logging in.
func (u *User) Deactivate() {
	u.active = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not an email address", email),
		)
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
