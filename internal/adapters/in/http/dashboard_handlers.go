package http

import (
	"net/http"

	"scribeassist/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// DashboardStatsResponse is the admin dashboard summary.
type DashboardStatsResponse struct {
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	TotalOrders    int64            `json:"total_orders"`
	NewInquiries   int64            `json:"new_inquiries"`
	PaidRevenue    int64            `json:"paid_revenue"`
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	actor, _ := actorFrom(ctx)

	query, err := queries.NewGetDashboardStatsQuery(actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	stats, err := s.getDashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStatsResponse{
		OrdersByStatus: stats.OrdersByStatus,
		TotalOrders:    stats.TotalOrders,
		NewInquiries:   stats.NewInquiries,
		PaidRevenue:    stats.PaidRevenue,
	})
}
