package queries

import (
	"errors"
	"time"

	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/guard"
)

var (
	ErrGetPostsQueryIsNotConstructed = errors.New(
		"GetPostsQuery must be created via NewGetPostsQuery constructor",
	)
	ErrGetPostBySlugQueryIsNotConstructed = errors.New(
		"GetPostBySlugQuery must be created via NewGetPostBySlugQuery constructor",
	)
)

// GetPostsQuery retrieves a page of articles. The public site sees only
// published posts; the back office passes includeUnpublished to see drafts.
type GetPostsQuery struct { //nolint:recvcheck //using for validation
	includeUnpublished bool
	page               int
	limit              int

	guard guard.ConstructorGuard
}

// NewGetPostsQuery creates a query for a page of posts. A zero page or
// limit selects the defaults.
func NewGetPostsQuery(includeUnpublished bool, page, limit int) (GetPostsQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageLimit
	}

	if page < 1 {
		return GetPostsQuery{}, ErrPageIsInvalid
	}
	if limit < 1 || limit > maxPageLimit {
		return GetPostsQuery{}, ErrLimitIsInvalid
	}

	return GetPostsQuery{
		includeUnpublished: includeUnpublished,
		page:               page,
		limit:              limit,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPostsQuery) Validate() error {
	return q.guard.Validate(ErrGetPostsQueryIsNotConstructed)
}

// IncludeUnpublished reports whether drafts are included.
func (q GetPostsQuery) IncludeUnpublished() bool {
	return q.includeUnpublished
}

// Page returns the 1-based page number.
func (q GetPostsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetPostsQuery) Limit() int {
	return q.limit
}

// GetPostBySlugQuery retrieves a single article by its slug.
type GetPostBySlugQuery struct { //nolint:recvcheck //using for validation
	slug               content.Slug
	includeUnpublished bool

	guard guard.ConstructorGuard
}

// NewGetPostBySlugQuery creates a query for one post.
func NewGetPostBySlugQuery(slug content.Slug, includeUnpublished bool) (GetPostBySlugQuery, error) {
	if err := slug.Validate(); err != nil {
		return GetPostBySlugQuery{}, err
	}

	return GetPostBySlugQuery{
		slug:               slug,
		includeUnpublished: includeUnpublished,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPostBySlugQuery) Validate() error {
	return q.guard.Validate(ErrGetPostBySlugQueryIsNotConstructed)
}

// Slug returns the requested slug.
func (q GetPostBySlugQuery) Slug() content.Slug {
	return q.slug
}

// IncludeUnpublished reports whether an unpublished post may be returned.
func (q GetPostBySlugQuery) IncludeUnpublished() bool {
	return q.includeUnpublished
}

// GetPostsQueryResponse is one page of the article listing.
type GetPostsQueryResponse struct {
	Posts []PostResponse
	Total int64
	Page  int
	Limit int
}

// PostResponse is the flat read model of an article.
type PostResponse struct {
	ID          kernel.UUID
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Category    string
	Tags        []string
	AuthorID    kernel.UUID
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
}
