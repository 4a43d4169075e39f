package commands

import (
	"errors"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/guard"
)

var (
	ErrUpdatePostCommandIsNotConstructed = errors.New(
		"UpdatePostCommand must be created via NewUpdatePostCommand constructor",
	)
	ErrPostUpdateIsEmpty = errors.New("post update must change at least one field")
)

// UpdatePostCommand represents an admin editing an existing article: a
// patch over title, body fields, and the publish flag. A title change
// re-derives the slug. Nil fields stay untouched.
type UpdatePostCommand struct { //nolint:recvcheck //using for validation
	actor     account.Actor
	postID    kernel.UUID
	title     *string
	excerpt   *string
	content   *string
	category  *string
	tags      []string
	published *bool

	guard guard.ConstructorGuard
}

// UpdatePostParams carries the patch for NewUpdatePostCommand.
type UpdatePostParams struct {
	Title     *string
	Excerpt   *string
	Content   *string
	Category  *string
	Tags      []string
	Published *bool
}

// NewUpdatePostCommand creates a command to edit a post.
func NewUpdatePostCommand(actor account.Actor, postID kernel.UUID, p UpdatePostParams) (UpdatePostCommand, error) {
	if p.Title == nil && p.Excerpt == nil && p.Content == nil &&
		p.Category == nil && p.Tags == nil && p.Published == nil {
		return UpdatePostCommand{}, ErrPostUpdateIsEmpty
	}

	if err := errors.Join(actor.Validate(), postID.Validate()); err != nil {
		return UpdatePostCommand{}, err
	}

	return UpdatePostCommand{
		actor:     actor,
		postID:    postID,
		title:     copyPtr(p.Title),
		excerpt:   copyPtr(p.Excerpt),
		content:   copyPtr(p.Content),
		category:  copyPtr(p.Category),
		tags:      append([]string(nil), p.Tags...),
		published: copyPtr(p.Published),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePostCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePostCommandIsNotConstructed)
}

// Actor returns the caller.
func (c UpdatePostCommand) Actor() account.Actor {
	return c.actor
}

// PostID returns the target post's identifier.
func (c UpdatePostCommand) PostID() kernel.UUID {
	return c.postID
}

// Title returns the replacement title, or nil.
func (c UpdatePostCommand) Title() *string {
	return c.title
}

// Excerpt returns the replacement excerpt, or nil.
func (c UpdatePostCommand) Excerpt() *string {
	return c.excerpt
}

// Content returns the replacement body, or nil.
func (c UpdatePostCommand) Content() *string {
	return c.content
}

// Category returns the replacement category, or nil.
func (c UpdatePostCommand) Category() *string {
	return c.category
}

// Tags returns the replacement tags, or nil.
func (c UpdatePostCommand) Tags() []string {
	if c.tags == nil {
		return nil
	}
	return append([]string(nil), c.tags...)
}

// Published returns the requested publish state, or nil.
func (c UpdatePostCommand) Published() *bool {
	return c.published
}
