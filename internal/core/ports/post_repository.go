package ports

import (
	"context"

	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/model/kernel"
)

// PostRepository defines the persistence contract for posts.
type PostRepository interface {
	// Add persists a new post. A duplicate slug surfaces as an
	// errs.ConflictError; the creating handler re-probes and retries.
	Add(ctx context.Context, aggregate *content.Post) error

	// Update persists changes to an existing post. Slug conflicts surface
	// the same way as on Add.
	Update(ctx context.Context, aggregate *content.Post) error

	// Get retrieves a post by ID, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*content.Post, error)

	// GetBySlug retrieves a post by slug, or errs.ObjectNotFoundError.
	GetBySlug(ctx context.Context, slug content.Slug) (*content.Post, error)

	// SlugExists is the uniqueness oracle consulted by the slug probing
	// loop before each candidate.
	SlugExists(ctx context.Context, slug content.Slug) (bool, error)
}
