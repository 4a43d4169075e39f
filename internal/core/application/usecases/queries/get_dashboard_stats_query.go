package queries

import (
	"errors"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the back-office overview numbers.
type GetDashboardStatsQuery struct { //nolint:recvcheck //using for validation
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard stats.
func NewGetDashboardStatsQuery(actor account.Actor) (GetDashboardStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDashboardStatsQuery{}, err
	}

	return GetDashboardStatsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// Actor returns the caller.
func (q GetDashboardStatsQuery) Actor() account.Actor {
	return q.actor
}

// GetDashboardStatsQueryResponse is the back-office overview: order counts
// by lifecycle status, the unanswered inquiry backlog, and revenue summed
// over paid orders.
type GetDashboardStatsQueryResponse struct {
	OrdersByStatus map[string]int64
	TotalOrders    int64
	NewInquiries   int64
	PaidRevenue    int64
}
