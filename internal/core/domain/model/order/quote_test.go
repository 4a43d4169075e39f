package order_test

import (
	"testing"

	"scribeassist/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	t.Run("creates_valid_quote", func(t *testing.T) {
		q, err := order.NewQuote(350, 1.0, 1750)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, 350, q.PricePerPage())
		assert.InEpsilon(t, 1.0, q.UrgencyMultiplier(), 1e-9)
		assert.Equal(t, 1750, q.TotalPrice())
	})

	t.Run("rejects_negative_price_per_page", func(t *testing.T) {
		_, err := order.NewQuote(-1, 1.0, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price per page")
	})

	t.Run("rejects_multiplier_below_one", func(t *testing.T) {
		_, err := order.NewQuote(350, 0.9, 315)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "urgency multiplier")
	})

	t.Run("rejects_negative_total", func(t *testing.T) {
		_, err := order.NewQuote(350, 1.0, -10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "total price")
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var q order.Quote

		require.Error(t, q.Validate())
	})
}
