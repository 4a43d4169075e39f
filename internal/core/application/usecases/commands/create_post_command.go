package commands

import (
	"errors"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/guard"
)

var (
	ErrCreatePostCommandIsNotConstructed = errors.New(
		"CreatePostCommand must be created via NewCreatePostCommand constructor",
	)
	ErrPostTitleIsRequired   = errors.New("title is required")
	ErrPostContentIsRequired = errors.New("content is required")
)

// CreatePostCommand represents an admin authoring a new article. The slug is
// not part of the command: the handler derives it from the title and
// resolves collisions against the stored collection.
type CreatePostCommand struct { //nolint:recvcheck //using for validation
	actor    account.Actor
	postID   kernel.UUID
	title    string
	excerpt  string
	content  string
	category string
	tags     []string

	guard guard.ConstructorGuard
}

// NewCreatePostCommand creates a command to author a post.
func NewCreatePostCommand(actor account.Actor, postID kernel.UUID, title, excerpt, content, category string, tags []string) (CreatePostCommand, error) {
	cmd := CreatePostCommand{
		excerpt:  excerpt,
		category: category,
		tags:     append([]string(nil), tags...),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPostID(postID),
		cmd.setTitle(title),
		cmd.setContent(content),
	); err != nil {
		return CreatePostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePostCommand) Validate() error {
	return c.guard.Validate(ErrCreatePostCommandIsNotConstructed)
}

// Actor returns the authoring admin.
func (c CreatePostCommand) Actor() account.Actor {
	return c.actor
}

// PostID returns the unique identifier for the new post.
func (c CreatePostCommand) PostID() kernel.UUID {
	return c.postID
}

// Title returns the post title.
func (c CreatePostCommand) Title() string {
	return c.title
}

// Excerpt returns the optional short summary.
func (c CreatePostCommand) Excerpt() string {
	return c.excerpt
}

// Content returns the article body.
func (c CreatePostCommand) Content() string {
	return c.content
}

// Category returns the optional category label.
func (c CreatePostCommand) Category() string {
	return c.category
}

// Tags returns the post's tags.
func (c CreatePostCommand) Tags() []string {
	return append([]string(nil), c.tags...)
}

func (c *CreatePostCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreatePostCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}

	c.postID = postID
	return nil
}

func (c *CreatePostCommand) setTitle(title string) error {
	if title == "" {
		return ErrPostTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreatePostCommand) setContent(content string) error {
	if content == "" {
		return ErrPostContentIsRequired
	}

	c.content = content
	return nil
}
