package commands

import (
	"context"
	"errors"

	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/pkg/errs"
)

// maxSlugAttempts caps retries when a concurrent writer takes the probed
// slug between the uniqueness check and the insert.
const maxSlugAttempts = 3

// CreatePostCommandHandler handles authoring a new article. The slug is
// probed for uniqueness against stored posts; the storage-level unique
// constraint stays the final arbiter under concurrency, and a lost race is
// retried with a fresh probe.
type CreatePostCommandHandler struct {
	uowFactory PostUoWFactory
	policy     services.AccessPolicy
	clock      Clock
}

// NewCreatePostCommandHandler creates a handler for post creation.
func NewCreatePostCommandHandler(uowFactory PostUoWFactory, policy services.AccessPolicy, clock Clock) CreatePostCommandHandler {
	return CreatePostCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
	}
}

// Handle processes the authoring command and returns the created post.
func (h *CreatePostCommandHandler) Handle(ctx context.Context, cmd CreatePostCommand) (*content.Post, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionManagePosts); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		post, err := h.createOnce(ctx, cmd)
		if err == nil {
			return post, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *CreatePostCommandHandler) createOnce(ctx context.Context, cmd CreatePostCommand) (*content.Post, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	postRepo := uow.PostRepository()
	slug, err := services.UniqueSlug(ctx, cmd.Title(), postRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	post, err := content.NewPost(
		cmd.PostID(),
		cmd.Title(),
		slug,
		cmd.Excerpt(),
		cmd.Content(),
		cmd.Category(),
		cmd.Tags(),
		cmd.Actor().ID(),
		h.clock(),
	)
	if err != nil {
		return nil, err
	}

	if err = postRepo.Add(ctx, post); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return post, nil
}
