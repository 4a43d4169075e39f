package services_test

import (
	"testing"
	"time"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUrgencyMultiplier(t *testing.T) {
	tests := []struct {
		days int
		want float64
	}{
		{days: 30, want: 1.0},
		{days: 14, want: 1.0},
		{days: 13, want: 1.3},
		{days: 7, want: 1.3},
		{days: 6, want: 1.6},
		{days: 3, want: 1.6},
		{days: 2, want: 2.2},
		{days: 1, want: 3.0},
		{days: 0, want: 3.0},
		{days: -5, want: 3.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, services.UrgencyMultiplier(tt.days), "days=%d", tt.days)
	}
}

func TestPricingEngine_Quote(t *testing.T) {
	engine := services.NewPricingEngine()

	t.Run("bachelor_fourteen_days_five_pages", func(t *testing.T) {
		quote, known, err := engine.Quote(order.Bachelor, 14, 5)

		require.NoError(t, err)
		assert.True(t, known)
		assert.Equal(t, 350, quote.PricePerPage())
		assert.Equal(t, 1.0, quote.UrgencyMultiplier())
		assert.Equal(t, 1750, quote.TotalPrice())
	})

	t.Run("phd_one_day_two_pages", func(t *testing.T) {
		quote, known, err := engine.Quote(order.PhD, 1, 2)

		require.NoError(t, err)
		assert.True(t, known)
		assert.Equal(t, 750, quote.PricePerPage())
		assert.Equal(t, 3.0, quote.UrgencyMultiplier())
		assert.Equal(t, 4500, quote.TotalPrice())
	})

	t.Run("fractional_totals_round_to_nearest_rupee", func(t *testing.T) {
		// 250 * 1.3 * 3 = 975 exactly; 350 * 1.3 * 1 = 455; 450 * 1.3 * 1 = 585.
		// A half-rupee case: 250 * 2.2 * 1 = 550; use master at 1.3 with 3 pages
		// for a representative non-integer intermediate.
		quote, _, err := engine.Quote(order.Master, 7, 3)

		require.NoError(t, err)
		assert.Equal(t, 1755, quote.TotalPrice())
	})

	t.Run("unknown_level_charges_fallback_rate", func(t *testing.T) {
		quote, known, err := engine.Quote(order.AcademicLevelUnknown, 14, 4)

		require.NoError(t, err)
		assert.False(t, known)
		assert.Equal(t, services.FallbackRate, quote.PricePerPage())
		assert.Equal(t, 1000, quote.TotalPrice())
	})

	t.Run("rejects_non_positive_page_count", func(t *testing.T) {
		_, _, err := engine.Quote(order.Bachelor, 14, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("total_never_decreases_with_more_pages", func(t *testing.T) {
		levels := []order.AcademicLevel{order.HighSchool, order.Bachelor, order.Master, order.PhD}
		days := []int{21, 7, 2, 0}

		for _, level := range levels {
			for _, d := range days {
				prev := 0
				for pages := 1; pages <= 30; pages++ {
					quote, _, err := engine.Quote(level, d, pages)
					require.NoError(t, err)

					assert.GreaterOrEqual(t, quote.TotalPrice(), prev,
						"level=%s days=%d pages=%d", level, d, pages)
					prev = quote.TotalPrice()
				}
			}
		}
	})

	t.Run("identical_inputs_produce_identical_quotes", func(t *testing.T) {
		a, _, err := engine.Quote(order.Master, 5, 12)
		require.NoError(t, err)
		b, _, err := engine.Quote(order.Master, 5, 12)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}

func TestDaysUntilDeadline(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{name: "exactly_fourteen_days", deadline: now.AddDate(0, 0, 14), want: 14},
		{name: "partial_day_rounds_up", deadline: now.Add(25 * time.Hour), want: 2},
		{name: "under_a_day_counts_as_one", deadline: now.Add(time.Hour), want: 1},
		{name: "same_instant_is_zero", deadline: now, want: 0},
		{name: "past_deadline_is_negative", deadline: now.Add(-30 * time.Hour), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.DaysUntilDeadline(tt.deadline, now))
		})
	}
}
