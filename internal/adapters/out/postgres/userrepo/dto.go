// Package userrepo persists user accounts.
package userrepo

import (
	"time"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the database row for a user account. The email carries a
// unique index; registration with a taken address surfaces as a conflict.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:255;uniqueIndex"`
	Name         string
	PasswordHash string
	Role         string `gorm:"size:16"`
	Active       bool
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		Name:         aggregate.Name(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Active:       aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Email, dto.Name, dto.PasswordHash, role, dto.Active, dto.CreatedAt)
}
