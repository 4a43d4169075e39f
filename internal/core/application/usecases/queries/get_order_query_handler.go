package queries

import (
	"context"

	"gorm.io/gorm"

	"scribeassist/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order from the database. Ownership
// scoping lives in the WHERE clause, so an order belonging to someone else
// is indistinguishable from a missing one.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Notes and requirements are included here but
// omitted from the listing model.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	where := "id = ?"
	args := []any{query.OrderID().String()}
	if !query.Actor().IsAdmin() {
		where += " AND customer_id = ?"
		args = append(args, query.Actor().ID().String())
	}

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
		WHERE `+where, args...).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return scanOrderRow(rows)
}
