// Package queries contains read operations in the CQRS architecture. Query
// handlers bypass the domain aggregates and read projections straight from
// the database with raw SQL, returning flat response models for transport.
package queries

import (
	"errors"
	"time"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/pkg/guard"
)

// Pagination bounds shared by the listing queries.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrPageIsInvalid  = errors.New("page must be at least 1")
	ErrLimitIsInvalid = errors.New("limit must be between 1 and 100")
)

// GetOrdersQuery retrieves a page of orders. Admins see every order;
// customers see only their own. The optional status filter narrows the
// listing.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actor  account.Actor
	status *order.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a page of orders. A zero page or
// limit selects the defaults.
func NewGetOrdersQuery(actor account.Actor, status *order.Status, page, limit int) (GetOrdersQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageLimit
	}

	q := GetOrdersQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if page < 1 {
		return GetOrdersQuery{}, ErrPageIsInvalid
	}
	if limit < 1 || limit > maxPageLimit {
		return GetOrdersQuery{}, ErrLimitIsInvalid
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		filter := *status
		q.status = &filter
	}

	q.actor = actor
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the caller.
func (q GetOrdersQuery) Actor() account.Actor {
	return q.actor
}

// Status returns the status filter, or nil for all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// GetOrdersQueryResponse is one page of the order listing.
type GetOrdersQueryResponse struct {
	Orders []OrderResponse
	Total  int64
	Page   int
	Limit  int
}

// OrderResponse is the flat read model of an order. Enum fields carry their
// wire names; identifiers stay typed.
type OrderResponse struct {
	ID             kernel.UUID
	Number         string
	CustomerID     kernel.UUID
	Title          string
	Subject        string
	AcademicLevel  string
	PaperType      string
	PageCount      int
	Deadline       time.Time
	TotalPrice     int
	Status         string
	PaymentStatus  string
	AssignedWriter *kernel.UUID
	CreatedAt      time.Time
}
