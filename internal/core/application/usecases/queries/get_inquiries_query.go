package queries

import (
	"errors"
	"time"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/inquiry"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/guard"
)

var ErrGetInquiriesQueryIsNotConstructed = errors.New(
	"GetInquiriesQuery must be created via NewGetInquiriesQuery constructor",
)

// GetInquiriesQuery retrieves a page of inquiries for the back office.
type GetInquiriesQuery struct { //nolint:recvcheck //using for validation
	actor  account.Actor
	status *inquiry.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetInquiriesQuery creates a query for a page of inquiries. A zero page
// or limit selects the defaults.
func NewGetInquiriesQuery(actor account.Actor, status *inquiry.Status, page, limit int) (GetInquiriesQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageLimit
	}

	q := GetInquiriesQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return GetInquiriesQuery{}, err
	}
	if page < 1 {
		return GetInquiriesQuery{}, ErrPageIsInvalid
	}
	if limit < 1 || limit > maxPageLimit {
		return GetInquiriesQuery{}, ErrLimitIsInvalid
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetInquiriesQuery{}, err
		}
		filter := *status
		q.status = &filter
	}

	q.actor = actor
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInquiriesQuery) Validate() error {
	return q.guard.Validate(ErrGetInquiriesQueryIsNotConstructed)
}

// Actor returns the caller.
func (q GetInquiriesQuery) Actor() account.Actor {
	return q.actor
}

// Status returns the status filter, or nil for all statuses.
func (q GetInquiriesQuery) Status() *inquiry.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetInquiriesQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetInquiriesQuery) Limit() int {
	return q.limit
}

// GetInquiriesQueryResponse is one page of the inquiry listing.
type GetInquiriesQueryResponse struct {
	Inquiries []InquiryResponse
	Total     int64
	Page      int
	Limit     int
}

// InquiryResponse is the flat read model of an inquiry.
type InquiryResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Subject     string
	Message     string
	Source      string
	UserID      *kernel.UUID
	Status      string
	Priority    string
	Notes       string
	RespondedAt *time.Time
	CreatedAt   time.Time
}
