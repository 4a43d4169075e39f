package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"
)

// GetPostsQueryHandler reads the article listing. Published posts are
// ordered by publication time; drafts, when included, sort by authoring
// time at the end.
type GetPostsQueryHandler struct {
	db *gorm.DB
}

// NewGetPostsQueryHandler creates a handler for article listing queries.
func NewGetPostsQueryHandler(db *gorm.DB) GetPostsQueryHandler {
	return GetPostsQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetPostsQueryHandler) Handle(ctx context.Context, query GetPostsQuery) (GetPostsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPostsQueryResponse{}, err
	}

	where := "1=1"
	if !query.IncludeUnpublished() {
		where = "published = true"
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM posts WHERE " + where).
		Scan(&total).Error; err != nil {
		return GetPostsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			slug,
			excerpt,
			content,
			category,
			tags,
			author_id,
			published,
			published_at,
			created_at
		FROM posts
		WHERE `+where+`
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT ? OFFSET ?
	`, query.Limit(), offset).Rows()
	if err != nil {
		return GetPostsQueryResponse{}, err
	}
	defer rows.Close()

	posts := make([]PostResponse, 0, query.Limit())
	for rows.Next() {
		resp, scanErr := scanPostRow(rows)
		if scanErr != nil {
			return GetPostsQueryResponse{}, scanErr
		}
		posts = append(posts, resp)
	}
	if err = rows.Err(); err != nil {
		return GetPostsQueryResponse{}, err
	}

	return GetPostsQueryResponse{
		Posts: posts,
		Total: total,
		Page:  query.Page(),
		Limit: query.Limit(),
	}, nil
}

func scanPostRow(rows *sql.Rows) (PostResponse, error) {
	var resp PostResponse
	var id, authorID uuid.UUID
	var tags pq.StringArray
	var publishedAt *time.Time
	var createdAt time.Time

	if err := rows.Scan(
		&id,
		&resp.Title,
		&resp.Slug,
		&resp.Excerpt,
		&resp.Content,
		&resp.Category,
		&tags,
		&authorID,
		&resp.Published,
		&publishedAt,
		&createdAt,
	); err != nil {
		return PostResponse{}, err
	}

	postID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return PostResponse{}, err
	}
	resp.ID = postID

	author, err := kernel.UUIDFromBytes(authorID[:])
	if err != nil {
		return PostResponse{}, err
	}
	resp.AuthorID = author

	resp.Tags = tags
	resp.PublishedAt = publishedAt
	resp.CreatedAt = createdAt
	return resp, nil
}

// GetPostBySlugQueryHandler reads one article by slug.
type GetPostBySlugQueryHandler struct {
	db *gorm.DB
}

// NewGetPostBySlugQueryHandler creates a handler for single-post queries.
func NewGetPostBySlugQueryHandler(db *gorm.DB) GetPostBySlugQueryHandler {
	return GetPostBySlugQueryHandler{db: db}
}

// Handle executes the query. An unpublished post is NotFound for public
// callers, the same answer as for a slug that never existed.
func (h GetPostBySlugQueryHandler) Handle(ctx context.Context, query GetPostBySlugQuery) (PostResponse, error) {
	if err := query.Validate(); err != nil {
		return PostResponse{}, err
	}

	where := "slug = ?"
	if !query.IncludeUnpublished() {
		where += " AND published = true"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			slug,
			excerpt,
			content,
			category,
			tags,
			author_id,
			published,
			published_at,
			created_at
		FROM posts
		WHERE `+where, query.Slug().String()).Rows()
	if err != nil {
		return PostResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PostResponse{}, err
		}
		return PostResponse{}, errs.NewObjectNotFoundError("post", query.Slug().String())
	}

	return scanPostRow(rows)
}
