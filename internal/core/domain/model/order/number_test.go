package order_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("matches_expected_shape", func(t *testing.T) {
		n := order.GenerateNumber(now)

		require.NoError(t, n.Validate())
		assert.Regexp(t, regexp.MustCompile(`^SA-[0-9A-Z]+-[0-9A-Z]{4}$`), n.String())
	})

	t.Run("is_uppercase", func(t *testing.T) {
		n := order.GenerateNumber(now)

		assert.Equal(t, strings.ToUpper(n.String()), n.String())
	})

	t.Run("timestamp_part_sorts_with_time", func(t *testing.T) {
		earlier := order.GenerateNumber(now)
		later := order.GenerateNumber(now.Add(24 * time.Hour))

		earlierTS := strings.Split(earlier.String(), "-")[1]
		laterTS := strings.Split(later.String(), "-")[1]

		// Same-length base36 timestamps compare lexicographically.
		require.Len(t, laterTS, len(earlierTS))
		assert.Less(t, earlierTS, laterTS)
	})

	t.Run("random_tail_varies", func(t *testing.T) {
		seen := make(map[order.Number]bool)
		for range 50 {
			seen[order.GenerateNumber(now)] = true
		}

		// All candidates share the timestamp, so variety comes from the
		// 4-char tail alone. A collision among 50 draws over 36^4
		// possibilities is possible but vanishingly unlikely.
		assert.Greater(t, len(seen), 45)
	})
}

func TestNumberFromString(t *testing.T) {
	t.Run("accepts_generated_numbers", func(t *testing.T) {
		generated := order.GenerateNumber(time.Now())

		parsed, err := order.NumberFromString(generated.String())

		require.NoError(t, err)
		assert.Equal(t, generated, parsed)
	})

	t.Run("rejects_empty", func(t *testing.T) {
		_, err := order.NumberFromString("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_wrong_prefix_and_shape", func(t *testing.T) {
		for _, raw := range []string{"XX-ABC-1234", "SA-abc-1234", "SA-ABC-12", "SA-ABC-12345", "SAABC1234"} {
			_, err := order.NumberFromString(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}
