package commands

import (
	"context"

	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/core/ports"
)

// UpdatePostCommandHandler handles article edits. A title change re-derives
// the slug with the same uniqueness probing as creation; the first publish
// stamps the publication time, later republishes keep it.
type UpdatePostCommandHandler struct {
	uowFactory PostUoWFactory
	policy     services.AccessPolicy
	clock      Clock
}

// NewUpdatePostCommandHandler creates a handler for post edits.
func NewUpdatePostCommandHandler(uowFactory PostUoWFactory, policy services.AccessPolicy, clock Clock) UpdatePostCommandHandler {
	return UpdatePostCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
	}
}

// Handle processes the edit and returns the updated post.
func (h *UpdatePostCommandHandler) Handle(ctx context.Context, cmd UpdatePostCommand) (*content.Post, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionManagePosts); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	postRepo := uow.PostRepository()
	post, err := postRepo.Get(ctx, cmd.PostID())
	if err != nil {
		return nil, err
	}

	if title := cmd.Title(); title != nil && *title != post.Title() {
		slug, slugErr := h.resolveSlug(ctx, postRepo, *title, post.Slug())
		if slugErr != nil {
			return nil, slugErr
		}
		if err = post.Retitle(*title, slug); err != nil {
			return nil, err
		}
	}

	if cmd.Excerpt() != nil || cmd.Content() != nil || cmd.Category() != nil || cmd.Tags() != nil {
		excerpt, body, category, tags := post.Excerpt(), post.Content(), post.Category(), post.Tags()
		if v := cmd.Excerpt(); v != nil {
			excerpt = *v
		}
		if v := cmd.Content(); v != nil {
			body = *v
		}
		if v := cmd.Category(); v != nil {
			category = *v
		}
		if v := cmd.Tags(); v != nil {
			tags = v
		}
		if err = post.EditBody(excerpt, body, category, tags); err != nil {
			return nil, err
		}
	}

	if published := cmd.Published(); published != nil {
		if *published {
			post.Publish(h.clock())
		} else {
			post.Unpublish()
		}
	}

	if err = postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return post, nil
}

// resolveSlug derives a unique slug for the new title. The post's current
// slug is treated as free so a cosmetic retitle that slugifies to the same
// value does not probe itself into a numbered suffix.
func (h *UpdatePostCommandHandler) resolveSlug(ctx context.Context, postRepo ports.PostRepository, title string, current content.Slug) (content.Slug, error) {
	exists := func(ctx context.Context, slug content.Slug) (bool, error) {
		if slug == current {
			return false, nil
		}
		return postRepo.SlugExists(ctx, slug)
	}
	return services.UniqueSlug(ctx, title, exists)
}
