package inquiryrepo

import (
	"context"
	"errors"
	"time"

	"scribeassist/internal/core/domain/model/inquiry"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInquiryRepository implements ports.InquiryRepository using GORM.
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GORM inquiry repository.
func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// Add saves a new inquiry.
func (r *GormInquiryRepository) Add(ctx context.Context, aggregate *inquiry.Inquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing inquiry.
func (r *GormInquiryRepository) Update(ctx context.Context, aggregate *inquiry.Inquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InquiryDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inquiry", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an inquiry by ID.
func (r *GormInquiryRepository) Get(ctx context.Context, id kernel.UUID) (*inquiry.Inquiry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InquiryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inquiry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an inquiry permanently.
func (r *GormInquiryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&InquiryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inquiry", id.String())
	}

	return nil
}

// GetAllNewBefore retrieves inquiries still in the New status submitted
// before the cutoff, oldest first.
func (r *GormInquiryRepository) GetAllNewBefore(ctx context.Context, cutoff time.Time) ([]*inquiry.Inquiry, error) {
	var dtos []InquiryDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ? AND created_at < ?", inquiry.New.String(), cutoff).Error; err != nil {
		return nil, err
	}

	inquiries := make([]*inquiry.Inquiry, 0, len(dtos))
	for _, dto := range dtos {
		inq, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}

	return inquiries, nil
}
