// Package orderrepo persists order aggregates. It maps between the domain
// model and the relational representation, keeping enum fields as their
// string forms so the rows stay readable and queryable without a decoder.
package orderrepo

import (
	"time"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO is the database row for an order aggregate. The order number
// carries a unique index; inserting a duplicate surfaces as a conflict and
// the creating handler regenerates the number.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number            string    `gorm:"size:32;uniqueIndex"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index"`
	Title             string
	Description       string
	Subject           string
	AcademicLevel     string `gorm:"size:16"`
	PaperType         string `gorm:"size:32"`
	PageCount         int
	Words             int
	Deadline          time.Time
	PricePerPage      int
	UrgencyMultiplier float64
	TotalPrice        int
	Status            string `gorm:"size:16;index"`
	PaymentStatus     string `gorm:"size:16"`
	AssignedWriter    *uuid.UUID `gorm:"type:uuid"`
	Requirements      string
	Attachments       pq.StringArray `gorm:"type:text[]"`
	Notes             string
	CompletedAt       *time.Time
	CreatedAt         time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var writerID *uuid.UUID
	if id := aggregate.AssignedWriter(); id != nil {
		raw := id.Bytes()
		writerID = &raw
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Number:            aggregate.Number().String(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		Title:             aggregate.Title(),
		Description:       aggregate.Description(),
		Subject:           aggregate.Subject(),
		AcademicLevel:     aggregate.AcademicLevel().String(),
		PaperType:         aggregate.PaperType().String(),
		PageCount:         aggregate.PageCount(),
		Words:             aggregate.Words(),
		Deadline:          aggregate.Deadline(),
		PricePerPage:      aggregate.Quote().PricePerPage(),
		UrgencyMultiplier: aggregate.Quote().UrgencyMultiplier(),
		TotalPrice:        aggregate.Quote().TotalPrice(),
		Status:            aggregate.Status().String(),
		PaymentStatus:     aggregate.PaymentStatus().String(),
		AssignedWriter:    writerID,
		Requirements:      aggregate.Requirements(),
		Attachments:       pq.StringArray(aggregate.Attachments()),
		Notes:             aggregate.Notes(),
		CompletedAt:       aggregate.CompletedAt(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	level, err := order.AcademicLevelFromString(dto.AcademicLevel)
	if err != nil {
		return nil, err
	}

	paperType, err := order.PaperTypeFromString(dto.PaperType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	quote, err := order.NewQuote(dto.PricePerPage, dto.UrgencyMultiplier, dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	var writerID *kernel.UUID
	if dto.AssignedWriter != nil {
		wID, writerErr := kernel.UUIDFromBytes((*dto.AssignedWriter)[:])
		if writerErr != nil {
			return nil, writerErr
		}
		writerID = &wID
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		NewOrderParams: order.NewOrderParams{
			ID:            id,
			Number:        number,
			CustomerID:    customerID,
			Title:         dto.Title,
			Description:   dto.Description,
			Subject:       dto.Subject,
			AcademicLevel: level,
			PaperType:     paperType,
			PageCount:     dto.PageCount,
			Words:         dto.Words,
			Deadline:      dto.Deadline,
			Requirements:  dto.Requirements,
			Attachments:   dto.Attachments,
			Quote:         quote,
			CreatedAt:     dto.CreatedAt,
		},
		Status:         status,
		PaymentStatus:  paymentStatus,
		AssignedWriter: writerID,
		Notes:          dto.Notes,
		CompletedAt:    dto.CompletedAt,
	})
}
