package queries

import (
	"context"

	"gorm.io/gorm"

	"scribeassist/internal/core/domain/services"
)

// GetDashboardStatsQueryHandler aggregates the back-office overview numbers
// with three grouped queries.
type GetDashboardStatsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db, policy: policy}
}

// Handle executes the aggregation.
func (h GetDashboardStatsQueryHandler) Handle(ctx context.Context, query GetDashboardStatsQuery) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	if err := h.policy.Authorize(query.Actor(), services.ActionViewDashboard); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	resp := GetDashboardStatsQueryResponse{
		OrdersByStatus: make(map[string]int64),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}
		resp.OrdersByStatus[status] = count
		resp.TotalOrders += count
	}
	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	if err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM inquiries
		WHERE status = 'new'
	`).Scan(&resp.NewInquiries).Error; err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	if err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_price), 0)
		FROM orders
		WHERE payment_status = 'paid'
	`).Scan(&resp.PaidRevenue).Error; err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return resp, nil
}
