// Package postrepo persists blog post aggregates.
package postrepo

import (
	"time"

	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostDTO is the database row for a post. The slug carries a unique index;
// inserting a duplicate surfaces as a conflict and the creating handler
// re-probes for a free slug.
type PostDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Slug        string `gorm:"size:128;uniqueIndex"`
	Excerpt     string
	Content     string
	Category    string         `gorm:"size:64"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	AuthorID    uuid.UUID      `gorm:"type:uuid"`
	Published   bool           `gorm:"index"`
	PublishedAt *time.Time
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "posts".
func (PostDTO) TableName() string {
	return "posts"
}

func fromDomain(aggregate *content.Post) PostDTO {
	return PostDTO{
		ID:          aggregate.ID().Bytes(),
		Title:       aggregate.Title(),
		Slug:        aggregate.Slug().String(),
		Excerpt:     aggregate.Excerpt(),
		Content:     aggregate.Content(),
		Category:    aggregate.Category(),
		Tags:        pq.StringArray(aggregate.Tags()),
		AuthorID:    aggregate.AuthorID().Bytes(),
		Published:   aggregate.IsPublished(),
		PublishedAt: aggregate.PublishedAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto PostDTO) (*content.Post, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	slug := content.Slug(dto.Slug)
	if err = slug.Validate(); err != nil {
		return nil, err
	}

	return content.RestorePost(
		id,
		dto.Title,
		slug,
		dto.Excerpt,
		dto.Content,
		dto.Category,
		dto.Tags,
		authorID,
		dto.Published,
		dto.PublishedAt,
		dto.CreatedAt,
	)
}
