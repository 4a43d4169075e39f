package http

import (
	"net/http"

	"scribeassist/internal/core/application/usecases/commands"
	"scribeassist/internal/core/application/usecases/queries"
	"scribeassist/internal/core/domain/model/inquiry"
	"scribeassist/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// CreateInquiry handles POST /api/v1/inquiries. The endpoint is public; a
// logged-in caller gets their account linked to the inquiry.
func (s *Server) CreateInquiry(ctx echo.Context) error {
	var req createInquiryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	var userID *kernel.UUID
	if actor, ok := actorFrom(ctx); ok {
		id := actor.ID()
		userID = &id
	}

	cmd, err := commands.NewCreateInquiryCommand(
		kernel.NewUUID(), req.Name, req.Email, req.Subject, req.Message, req.Source, userID,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	inq, err := s.createInquiry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, inquiryFromAggregate(inq))
}

// GetInquiries handles GET /api/v1/inquiries.
func (s *Server) GetInquiries(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	var status *inquiry.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := inquiry.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		status = &parsed
	}

	page, limit, err := parsePagination(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetInquiriesQuery(actor, status, page, limit)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getInquiries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	inquiries := make([]InquiryResponse, len(result.Inquiries))
	for i, row := range result.Inquiries {
		inquiries[i] = inquiryFromReadModel(row)
	}

	return ctx.JSON(http.StatusOK, InquiriesPageResponse{
		Inquiries: inquiries,
		Total:     result.Total,
		Page:      result.Page,
		Limit:     result.Limit,
	})
}

type updateInquiryRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Notes    *string `json:"notes"`
}

// UpdateInquiry handles PATCH /api/v1/inquiries/:id.
func (s *Server) UpdateInquiry(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	inquiryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updateInquiryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	var status *inquiry.Status
	if req.Status != nil {
		parsed, parseErr := inquiry.StatusFromString(*req.Status)
		if parseErr != nil {
			return badRequest(ctx, parseErr)
		}
		status = &parsed
	}

	var priority *inquiry.Priority
	if req.Priority != nil {
		parsed, parseErr := inquiry.PriorityFromString(*req.Priority)
		if parseErr != nil {
			return badRequest(ctx, parseErr)
		}
		priority = &parsed
	}

	cmd, err := commands.NewUpdateInquiryCommand(actor, inquiryID, status, priority, req.Notes)
	if err != nil {
		return badRequest(ctx, err)
	}

	inq, err := s.updateInquiry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, inquiryFromAggregate(inq))
}

// DeleteInquiry handles DELETE /api/v1/inquiries/:id.
func (s *Server) DeleteInquiry(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	inquiryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteInquiryCommand(actor, inquiryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.deleteInquiry.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
