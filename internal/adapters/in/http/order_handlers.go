package http

import (
	"net/http"
	"time"

	"scribeassist/internal/core/application/usecases/commands"
	"scribeassist/internal/core/application/usecases/queries"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Subject       string    `json:"subject"`
	AcademicLevel string    `json:"academic_level"`
	PaperType     string    `json:"paper_type"`
	PageCount     int       `json:"page_count"`
	Words         int       `json:"words"`
	Deadline      time.Time `json:"deadline"`
	Requirements  string    `json:"requirements"`
	Attachments   []string  `json:"attachments"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	level, err := order.AcademicLevelFromString(req.AcademicLevel)
	if err != nil {
		return badRequest(ctx, err)
	}
	paperType, err := order.PaperTypeFromString(req.PaperType)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderParams{
		Actor:         actor,
		OrderID:       kernel.NewUUID(),
		Title:         req.Title,
		Description:   req.Description,
		Subject:       req.Subject,
		AcademicLevel: level,
		PaperType:     paperType,
		PageCount:     req.PageCount,
		Words:         req.Words,
		Deadline:      req.Deadline,
		Requirements:  req.Requirements,
		Attachments:   req.Attachments,
	})
	if err != nil {
		return badRequest(ctx, err)
	}

	ord, err := s.createOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(ord))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		status = &parsed
	}

	page, limit, err := parsePagination(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(actor, status, page, limit)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders := make([]OrderResponse, len(result.Orders))
	for i, row := range result.Orders {
		orders[i] = orderFromReadModel(row)
	}

	return ctx.JSON(http.StatusOK, OrdersPageResponse{
		Orders: orders,
		Total:  result.Total,
		Page:   result.Page,
		Limit:  result.Limit,
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	row, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(row))
}

type updateOrderRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Subject      *string  `json:"subject"`
	PageCount    *int     `json:"page_count"`
	Words        *int     `json:"words"`
	Requirements *string  `json:"requirements"`
	Attachments  []string `json:"attachments"`
	Notes        *string  `json:"notes"`
}

// UpdateOrderContent handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrderContent(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderContentCommand(actor, orderID, order.ContentEdit{
		Title:        req.Title,
		Description:  req.Description,
		Subject:      req.Subject,
		PageCount:    req.PageCount,
		Words:        req.Words,
		Requirements: req.Requirements,
		Attachments:  req.Attachments,
		Notes:        req.Notes,
	})
	if err != nil {
		return badRequest(ctx, err)
	}

	ord, err := s.updateOrderContent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(ord))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	ord, err := s.cancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(ord))
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, orderID, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	ord, err := s.changeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(ord))
}

type changePaymentRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// ChangePaymentStatus handles PUT /api/v1/orders/:id/payment.
func (s *Server) ChangePaymentStatus(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req changePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	target, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangePaymentStatusCommand(actor, orderID, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	ord, err := s.changePaymentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(ord))
}

type assignWriterRequest struct {
	WriterID string `json:"writer_id"`
}

// AssignWriter handles PUT /api/v1/orders/:id/writer.
func (s *Server) AssignWriter(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req assignWriterRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	writerID, err := kernel.UUIDFromString(req.WriterID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignWriterCommand(actor, orderID, writerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	ord, err := s.assignWriter.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(ord))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(actor, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.deleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
