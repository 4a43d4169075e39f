// Package inquiryrepo persists inquiry aggregates.
package inquiryrepo

import (
	"time"

	"scribeassist/internal/core/domain/model/inquiry"
	"scribeassist/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InquiryDTO is the database row for an inquiry. Status and priority are
// stored as strings; the status index serves the escalation job's scan for
// unanswered inquiries.
type InquiryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Email       string
	Subject     string
	Message     string
	Source      string     `gorm:"size:32"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	Status      string     `gorm:"size:16;index"`
	Priority    string     `gorm:"size:16"`
	Notes       string
	RespondedAt *time.Time
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "inquiries".
func (InquiryDTO) TableName() string {
	return "inquiries"
}

func fromDomain(aggregate *inquiry.Inquiry) InquiryDTO {
	var userID *uuid.UUID
	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return InquiryDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Email:       aggregate.Email(),
		Subject:     aggregate.Subject(),
		Message:     aggregate.Message(),
		Source:      aggregate.Source(),
		UserID:      userID,
		Status:      aggregate.Status().String(),
		Priority:    aggregate.Priority().String(),
		Notes:       aggregate.Notes(),
		RespondedAt: aggregate.RespondedAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto InquiryDTO) (*inquiry.Inquiry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	status, err := inquiry.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := inquiry.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	return inquiry.RestoreInquiry(
		id,
		dto.Name,
		dto.Email,
		dto.Subject,
		dto.Message,
		dto.Source,
		userID,
		status,
		priority,
		dto.Notes,
		dto.RespondedAt,
		dto.CreatedAt,
	)
}
