package content

import (
	"errors"
	"fmt"
	"time"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"
)

// ErrPostIsNotConstructed is returned when a Post instance was not created
// through NewPost or RestorePost.
var ErrPostIsNotConstructed = errors.New("Post must be created via NewPost or RestorePost")

const (
	postTitleMinLength   = 5
	postContentMinLength = 50
)

// Post is a blog or sample article published on the public site. Its slug is
// assigned at creation (or when the title changes) and is unique within the
// posts collection.
type Post struct {
	id          kernel.UUID
	title       string
	slug        Slug
	excerpt     string
	content     string
	category    string
	tags        []string
	authorID    kernel.UUID
	published   bool
	publishedAt *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewPost creates an unpublished post with a pre-resolved unique slug.
func NewPost(id kernel.UUID, title string, slug Slug, excerpt, contentBody, category string, tags []string, authorID kernel.UUID, createdAt time.Time) (*Post, error) {
	p := &Post{
		excerpt:       excerpt,
		category:      category,
		tags:          append([]string(nil), tags...),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTitle(title),
		p.setSlug(slug),
		p.setContent(contentBody),
		p.setAuthorID(authorID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePost reconstructs a post from persistence.
func RestorePost(
	id kernel.UUID,
	title string,
	slug Slug,
	excerpt, contentBody, category string,
	tags []string,
	authorID kernel.UUID,
	published bool,
	publishedAt *time.Time,
	createdAt time.Time,
) (*Post, error) {
	p, err := NewPost(id, title, slug, excerpt, contentBody, category, tags, authorID, createdAt)
	if err != nil {
		return nil, err
	}

	p.published = published
	if publishedAt != nil {
		stamp := *publishedAt
		p.publishedAt = &stamp
	}

	return p, nil
}

// Validate ensures the Post was created via a constructor.
func (p *Post) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPostIsNotConstructed
	}
	return nil
}

// ID returns the post's unique identifier.
func (p *Post) ID() kernel.UUID {
	return p.id
}

// Title returns the post title.
func (p *Post) Title() string {
	return p.title
}

// Slug returns the unique URL identifier.
func (p *Post) Slug() Slug {
	return p.slug
}

// Excerpt returns the optional short summary.
func (p *Post) Excerpt() string {
	return p.excerpt
}

// Content returns the article body.
func (p *Post) Content() string {
	return p.content
}

// Category returns the optional category label.
func (p *Post) Category() string {
	return p.category
}

// Tags returns the post's tags.
func (p *Post) Tags() []string {
	return append([]string(nil), p.tags...)
}

// AuthorID returns the admin who wrote the post.
func (p *Post) AuthorID() kernel.UUID {
	return p.authorID
}

// IsPublished reports whether the post is publicly visible.
func (p *Post) IsPublished() bool {
	return p.published
}

// PublishedAt returns the first-publication stamp, or nil.
func (p *Post) PublishedAt() *time.Time {
	if p.publishedAt == nil {
		return nil
	}
	stamp := *p.publishedAt
	return &stamp
}

// CreatedAt returns the authoring time.
func (p *Post) CreatedAt() time.Time {
	return p.createdAt
}

// Publish makes the post publicly visible. The publication stamp is set on
// first publish only; unpublishing and republishing keeps the original.
func (p *Post) Publish(at time.Time) {
	p.published = true
	if p.publishedAt == nil {
		stamp := at
		p.publishedAt = &stamp
	}
}

// Unpublish hides the post from the public site.
func (p *Post) Unpublish() {
	p.published = false
}

// Retitle changes the title together with its newly resolved slug, so the
// two can never drift apart.
func (p *Post) Retitle(title string, slug Slug) error {
	staged := *p
	if err := errors.Join(staged.setTitle(title), staged.setSlug(slug)); err != nil {
		return err
	}
	*p = staged
	return nil
}

// EditBody updates the article body and presentation fields.
func (p *Post) EditBody(excerpt, contentBody, category string, tags []string) error {
	if err := p.setContent(contentBody); err != nil {
		return err
	}
	p.excerpt = excerpt
	p.category = category
	p.tags = append([]string(nil), tags...)
	return nil
}

func (p *Post) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Post) setTitle(title string) error {
	if len(title) < postTitleMinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"title",
			fmt.Errorf("must be at least %d characters", postTitleMinLength),
		)
	}
	p.title = title
	return nil
}

func (p *Post) setSlug(slug Slug) error {
	if err := slug.Validate(); err != nil {
		return err
	}
	p.slug = slug
	return nil
}

func (p *Post) setContent(contentBody string) error {
	if len(contentBody) < postContentMinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"content",
			fmt.Errorf("must be at least %d characters", postContentMinLength),
		)
	}
	p.content = contentBody
	return nil
}

func (p *Post) setAuthorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.authorID = id
	return nil
}
