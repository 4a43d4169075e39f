package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scribeassist/internal/core/domain/model/kernel"
)

// GetOrdersQueryHandler reads the order listing straight from the database.
// Visibility scoping happens in the WHERE clause: non-admin callers are
// restricted to their own customer ID.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query and returns one page plus the total
// count under the same filters.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 2)

	if !query.Actor().IsAdmin() {
		where += " AND customer_id = ?"
		args = append(args, query.Actor().ID().String())
	}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return GetOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			title,
			subject,
			academic_level,
			paper_type,
			page_count,
			deadline,
			total_price,
			status,
			payment_status,
			assigned_writer,
			created_at
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.Limit())
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return GetOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return GetOrdersQueryResponse{
		Orders: orders,
		Total:  total,
		Page:   query.Page(),
		Limit:  query.Limit(),
	}, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, customerID uuid.UUID
	var assignedWriter *uuid.UUID
	var deadline, createdAt time.Time

	if err := rows.Scan(
		&id,
		&resp.Number,
		&customerID,
		&resp.Title,
		&resp.Subject,
		&resp.AcademicLevel,
		&resp.PaperType,
		&resp.PageCount,
		&deadline,
		&resp.TotalPrice,
		&resp.Status,
		&resp.PaymentStatus,
		&assignedWriter,
		&createdAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	owner, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = owner

	if assignedWriter != nil {
		writer, writerErr := kernel.UUIDFromBytes((*assignedWriter)[:])
		if writerErr != nil {
			return OrderResponse{}, writerErr
		}
		resp.AssignedWriter = &writer
	}

	resp.Deadline = deadline
	resp.CreatedAt = createdAt
	return resp, nil
}
