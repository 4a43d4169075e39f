package order_test

import (
	"testing"
	"time"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validParams(t *testing.T) order.NewOrderParams {
	t.Helper()

	quote, err := order.NewQuote(350, 1.0, 1750)
	require.NoError(t, err)

	return order.NewOrderParams{
		ID:            kernel.NewUUID(),
		Number:        order.GenerateNumber(testNow),
		CustomerID:    kernel.NewUUID(),
		Title:         "Climate change essay",
		Description:   "A five page essay on the economics of climate change.",
		Subject:       "Economics",
		AcademicLevel: order.Bachelor,
		PaperType:     order.Essay,
		PageCount:     5,
		Deadline:      testNow.AddDate(0, 0, 14),
		Quote:         quote,
		CreatedAt:     testNow,
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_unpaid_order", func(t *testing.T) {
		p := validParams(t)

		o, err := order.NewOrder(p)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(p.ID))
		assert.Equal(t, p.Number, o.Number())
		assert.True(t, o.CustomerID().IsEqual(p.CustomerID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, 1750, o.TotalPrice())
		assert.Nil(t, o.AssignedWriter())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("rejects_past_deadline", func(t *testing.T) {
		p := validParams(t)
		p.Deadline = testNow.AddDate(0, 0, -1)

		o, err := order.NewOrder(p)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "deadline")
	})

	t.Run("rejects_deadline_equal_to_creation_time", func(t *testing.T) {
		p := validParams(t)
		p.Deadline = testNow

		_, err := order.NewOrder(p)

		require.Error(t, err)
	})

	t.Run("rejects_short_title", func(t *testing.T) {
		p := validParams(t)
		p.Title = "Esy"

		_, err := order.NewOrder(p)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("rejects_zero_page_count", func(t *testing.T) {
		p := validParams(t)
		p.PageCount = 0

		_, err := order.NewOrder(p)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_missing_quote", func(t *testing.T) {
		p := validParams(t)
		p.Quote = order.Quote{}

		_, err := order.NewOrder(p)

		require.Error(t, err)
	})

	t.Run("collects_multiple_validation_errors", func(t *testing.T) {
		p := validParams(t)
		p.Title = ""
		p.Subject = ""
		p.PageCount = -3

		_, err := order.NewOrder(p)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "subject")
		assert.Contains(t, err.Error(), "pageCount")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_with_past_deadline", func(t *testing.T) {
		completed := testNow.AddDate(0, 0, 10)
		p := order.RestoreOrderParams{
			NewOrderParams: validParams(t),
			Status:         order.Completed,
			PaymentStatus:  order.PaymentPaid,
			CompletedAt:    &completed,
		}
		// Stored orders may have deadlines that are in the past by now.
		p.Deadline = testNow.AddDate(0, 0, -30)

		o, err := order.RestoreOrder(p)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completed, *o.CompletedAt())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		p := order.RestoreOrderParams{
			NewOrderParams: validParams(t),
			Status:         order.StatusUnknown,
			PaymentStatus:  order.PaymentPending,
		}

		_, err := order.RestoreOrder(p)

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks_the_happy_path", func(t *testing.T) {
		o, err := order.NewOrder(validParams(t))
		require.NoError(t, err)

		for _, next := range []order.Status{order.Confirmed, order.InProgress, order.Review, order.Completed} {
			require.NoError(t, o.ChangeStatus(next, testNow))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("stamps_completed_at_once", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))
		require.NoError(t, o.ChangeStatus(order.Confirmed, testNow))
		require.NoError(t, o.ChangeStatus(order.InProgress, testNow))
		require.NoError(t, o.ChangeStatus(order.Review, testNow))

		completedAt := testNow.AddDate(0, 0, 7)
		require.NoError(t, o.ChangeStatus(order.Completed, completedAt))

		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completedAt, *o.CompletedAt())

		// A later refund must not disturb the completion stamp.
		require.NoError(t, o.ChangeStatus(order.Refunded, completedAt.AddDate(0, 0, 1)))
		assert.Equal(t, completedAt, *o.CompletedAt())
	})

	t.Run("completed_at_cannot_be_mutated_through_getter", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))
		require.NoError(t, o.ChangeStatus(order.Confirmed, testNow))
		require.NoError(t, o.ChangeStatus(order.InProgress, testNow))
		require.NoError(t, o.ChangeStatus(order.Review, testNow))
		require.NoError(t, o.ChangeStatus(order.Completed, testNow))

		*o.CompletedAt() = testNow.AddDate(1, 0, 0)

		assert.Equal(t, testNow, *o.CompletedAt())
	})

	t.Run("rejects_illegal_edge", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))

		err := o.ChangeStatus(order.Completed, testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels_pending_order", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancels_confirmed_order", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))
		require.NoError(t, o.ChangeStatus(order.Confirmed, testNow))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("second_cancel_is_invalid_transition", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cannot_cancel_in_progress_order", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))
		require.NoError(t, o.ChangeStatus(order.Confirmed, testNow))
		require.NoError(t, o.ChangeStatus(order.InProgress, testNow))

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_AssignWriter(t *testing.T) {
	t.Run("assigns_and_reassigns", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.AssignWriter(first))
		require.NotNil(t, o.AssignedWriter())
		assert.True(t, o.AssignedWriter().IsEqual(first))

		require.NoError(t, o.AssignWriter(second))
		assert.True(t, o.AssignedWriter().IsEqual(second))
	})

	t.Run("rejects_zero_writer_id", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))
		var zero kernel.UUID

		require.Error(t, o.AssignWriter(zero))
	})
}

func TestOrder_ApplyContentEdit(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }

	t.Run("edits_without_page_change_keep_quote", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))

		err := o.ApplyContentEdit(order.ContentEdit{
			Title: strPtr("Revised essay title"),
			Notes: strPtr("customer asked for APA style"),
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "Revised essay title", o.Title())
		assert.Equal(t, "customer asked for APA style", o.Notes())
		assert.Equal(t, 1750, o.TotalPrice())
	})

	t.Run("page_change_reprices_atomically", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))
		repriced, err := order.NewQuote(350, 1.0, 2800)
		require.NoError(t, err)

		var repricedFor int
		err = o.ApplyContentEdit(order.ContentEdit{PageCount: intPtr(8)}, func(pageCount int) (order.Quote, error) {
			repricedFor = pageCount
			return repriced, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 8, repricedFor)
		assert.Equal(t, 8, o.PageCount())
		assert.Equal(t, 2800, o.TotalPrice())
	})

	t.Run("same_page_count_does_not_reprice", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))

		err := o.ApplyContentEdit(order.ContentEdit{PageCount: intPtr(5)}, func(int) (order.Quote, error) {
			t.Fatal("reprice must not be called for an unchanged page count")
			return order.Quote{}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1750, o.TotalPrice())
	})

	t.Run("page_change_requires_reprice_func", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))

		err := o.ApplyContentEdit(order.ContentEdit{PageCount: intPtr(8)}, nil)

		require.Error(t, err)
		assert.Equal(t, 5, o.PageCount())
	})

	t.Run("invalid_field_leaves_order_untouched", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))

		err := o.ApplyContentEdit(order.ContentEdit{
			Title:     strPtr("ok title here"),
			PageCount: intPtr(-2),
		}, func(int) (order.Quote, error) { return order.Quote{}, nil })

		require.Error(t, err)
		assert.Equal(t, "Climate change essay", o.Title())
		assert.Equal(t, 5, o.PageCount())
	})

	t.Run("empty_edit_is_rejected", func(t *testing.T) {
		o, _ := order.NewOrder(validParams(t))

		err := o.ApplyContentEdit(order.ContentEdit{}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil_order_fails", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
	})
}
