package http

import (
	"net/http"

	"scribeassist/internal/core/application/usecases/commands"
	"scribeassist/internal/core/application/usecases/queries"
	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetPosts handles GET /api/v1/posts. Anonymous callers and customers see
// published posts only; an admin may pass include_unpublished=true.
func (s *Server) GetPosts(ctx echo.Context) error {
	includeUnpublished := false
	if ctx.QueryParam("include_unpublished") == "true" {
		actor, ok := actorFrom(ctx)
		includeUnpublished = ok && actor.IsAdmin()
	}

	page, limit, err := parsePagination(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetPostsQuery(includeUnpublished, page, limit)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getPosts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	posts := make([]PostResponse, len(result.Posts))
	for i, row := range result.Posts {
		posts[i] = postFromReadModel(row)
	}

	return ctx.JSON(http.StatusOK, PostsPageResponse{
		Posts: posts,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	})
}

// GetPostBySlug handles GET /api/v1/posts/:slug.
func (s *Server) GetPostBySlug(ctx echo.Context) error {
	slug, err := content.SlugFromString(ctx.Param("slug"))
	if err != nil {
		return badRequest(ctx, err)
	}

	includeUnpublished := false
	if actor, ok := actorFrom(ctx); ok && actor.IsAdmin() {
		includeUnpublished = true
	}

	query, err := queries.NewGetPostBySlugQuery(slug, includeUnpublished)
	if err != nil {
		return badRequest(ctx, err)
	}

	row, err := s.getPostBySlug.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, postFromReadModel(row))
}

type createPostRequest struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// CreatePost handles POST /api/v1/posts.
func (s *Server) CreatePost(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	var req createPostRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreatePostCommand(
		actor, kernel.NewUUID(), req.Title, req.Excerpt, req.Content, req.Category, req.Tags,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	post, err := s.createPost.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, postFromAggregate(post))
}

type updatePostRequest struct {
	Title     *string  `json:"title"`
	Excerpt   *string  `json:"excerpt"`
	Content   *string  `json:"content"`
	Category  *string  `json:"category"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}

// UpdatePost handles PATCH /api/v1/posts/:id.
func (s *Server) UpdatePost(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updatePostRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdatePostCommand(actor, postID, commands.UpdatePostParams{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		return badRequest(ctx, err)
	}

	post, err := s.updatePost.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, postFromAggregate(post))
}
