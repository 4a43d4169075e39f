package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/services"
)

// GetInquiriesQueryHandler reads the inquiry listing for the back office.
// Inquiries are admin-only regardless of who submitted them.
type GetInquiriesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetInquiriesQueryHandler creates a handler for inquiry listing queries.
func NewGetInquiriesQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetInquiriesQueryHandler {
	return GetInquiriesQueryHandler{db: db, policy: policy}
}

// Handle executes the listing query, most urgent and oldest first.
func (h GetInquiriesQueryHandler) Handle(ctx context.Context, query GetInquiriesQuery) (GetInquiriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInquiriesQueryResponse{}, err
	}

	if err := h.policy.Authorize(query.Actor(), services.ActionManageInquiries); err != nil {
		return GetInquiriesQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 1)
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM inquiries WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return GetInquiriesQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			subject,
			message,
			source,
			user_id,
			status,
			priority,
			notes,
			responded_at,
			created_at
		FROM inquiries
		WHERE `+where+`
		ORDER BY
			CASE priority
				WHEN 'urgent' THEN 0
				WHEN 'high' THEN 1
				WHEN 'normal' THEN 2
				ELSE 3
			END,
			created_at ASC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...).Rows()
	if err != nil {
		return GetInquiriesQueryResponse{}, err
	}
	defer rows.Close()

	inquiries := make([]InquiryResponse, 0, query.Limit())
	for rows.Next() {
		var resp InquiryResponse
		var id uuid.UUID
		var userID *uuid.UUID
		var respondedAt *time.Time
		var createdAt time.Time

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Subject,
			&resp.Message,
			&resp.Source,
			&userID,
			&resp.Status,
			&resp.Priority,
			&resp.Notes,
			&respondedAt,
			&createdAt,
		); err != nil {
			return GetInquiriesQueryResponse{}, err
		}

		inquiryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetInquiriesQueryResponse{}, idErr
		}
		resp.ID = inquiryID

		if userID != nil {
			linked, linkErr := kernel.UUIDFromBytes((*userID)[:])
			if linkErr != nil {
				return GetInquiriesQueryResponse{}, linkErr
			}
			resp.UserID = &linked
		}

		resp.RespondedAt = respondedAt
		resp.CreatedAt = createdAt
		inquiries = append(inquiries, resp)
	}
	if err = rows.Err(); err != nil {
		return GetInquiriesQueryResponse{}, err
	}

	return GetInquiriesQueryResponse{
		Inquiries: inquiries,
		Total:     total,
		Page:      query.Page(),
		Limit:     query.Limit(),
	}, nil
}
