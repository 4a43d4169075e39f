package account

import (
	"errors"

	"scribeassist/internal/core/domain/model/kernel"
)

// Actor identifies the caller of an operation: an authenticated user with a
// role. The transport layer produces Actors by resolving session tokens; the
// core only ever consumes them.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates a validated Actor.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the acting user's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor has back-office privilege.
func (a Actor) IsAdmin() bool {
	return a.role.IsAdmin()
}

// Owns reports whether the actor is the given owner.
func (a Actor) Owns(ownerID kernel.UUID) bool {
	return a.id.IsEqual(ownerID)
}

// Validate rejects the zero-value Actor.
func (a Actor) Validate() error {
	return errors.Join(a.id.Validate(), a.role.Validate())
}
