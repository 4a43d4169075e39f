package order_test

import (
	"testing"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses_all_known_statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":     order.Pending,
			"confirmed":   order.Confirmed,
			"in_progress": order.InProgress,
			"review":      order.Review,
			"completed":   order.Completed,
			"cancelled":   order.Cancelled,
			"refunded":    order.Refunded,
		}

		for raw, want := range cases {
			got, err := order.StatusFromString(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got)
			assert.Equal(t, raw, got.String())
		}
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.StatusFromString("delivered")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("unknown_is_invalid", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
	})

	t.Run("out_of_range_is_invalid", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})

	t.Run("all_named_statuses_are_valid", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.InProgress,
			order.Review, order.Completed, order.Cancelled, order.Refunded,
		} {
			require.NoError(t, s.Validate())
		}
	})
}

func TestStatus_TransitionMatrix(t *testing.T) {
	all := []order.Status{
		order.Pending, order.Confirmed, order.InProgress,
		order.Review, order.Completed, order.Cancelled, order.Refunded,
	}

	legal := map[order.Status][]order.Status{
		order.Pending:    {order.Confirmed, order.Cancelled, order.Refunded},
		order.Confirmed:  {order.InProgress, order.Cancelled, order.Refunded},
		order.InProgress: {order.Review, order.Refunded},
		order.Review:     {order.Completed, order.Refunded},
		order.Completed:  {order.Refunded},
		order.Cancelled:  {order.Refunded},
		order.Refunded:   {},
	}

	isLegal := func(from, to order.Status) bool {
		for _, next := range legal[from] {
			if next == to {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			from, to := from, to
			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				got, err := from.TransitionTo(to)

				if isLegal(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, got)
					return
				}

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)

				var transitionErr *errs.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, from.String(), transitionErr.Current)
				assert.Equal(t, to.String(), transitionErr.Attempted)
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.False(t, order.Review.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Refunded.IsTerminal())
}
