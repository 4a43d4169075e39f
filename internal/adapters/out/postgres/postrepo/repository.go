package postrepo

import (
	"context"
	"errors"

	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPostRepository implements ports.PostRepository using GORM.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GORM post repository.
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Add saves a new post. A duplicate slug maps to errs.ConflictError so the
// caller can re-probe and retry.
func (r *GormPostRepository) Add(ctx context.Context, aggregate *content.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("slug", dto.Slug, err)
		}
		return err
	}

	return nil
}

// Update saves an existing post. Slug conflicts map the same way as on Add.
func (r *GormPostRepository) Update(ctx context.Context, aggregate *content.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PostDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("slug", dto.Slug, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("post", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a post by ID.
func (r *GormPostRepository) Get(ctx context.Context, id kernel.UUID) (*content.Post, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PostDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("post", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySlug retrieves a post by its slug.
func (r *GormPostRepository) GetBySlug(ctx context.Context, slug content.Slug) (*content.Post, error) {
	if err := slug.Validate(); err != nil {
		return nil, err
	}

	var dto PostDTO
	if err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("post", slug.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// SlugExists reports whether any post already uses the slug. It serves as
// the uniqueness oracle for the slug probing loop.
func (r *GormPostRepository) SlugExists(ctx context.Context, slug content.Slug) (bool, error) {
	if err := slug.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&PostDTO{}).
		Where("slug = ?", slug.String()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
