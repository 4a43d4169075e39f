package inquiry_test

import (
	"testing"
	"time"

	"scribeassist/internal/core/domain/model/inquiry"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestInquiry(t *testing.T) *inquiry.Inquiry {
	t.Helper()
	inq, err := inquiry.NewInquiry(
		kernel.NewUUID(),
		"Priya Sharma",
		"priya@example.com",
		"Question about dissertation pricing",
		"Do you handle statistics-heavy dissertations?",
		"contact-page",
		nil,
		testNow,
	)
	require.NoError(t, err)
	return inq
}

func TestNewInquiry(t *testing.T) {
	t.Run("creates_new_normal_priority_inquiry", func(t *testing.T) {
		inq := newTestInquiry(t)

		assert.Equal(t, inquiry.New, inq.Status())
		assert.Equal(t, inquiry.Normal, inq.Priority())
		assert.Nil(t, inq.RespondedAt())
		assert.Nil(t, inq.UserID())
		assert.Equal(t, "contact-page", inq.Source())
	})

	t.Run("links_authenticated_submitter", func(t *testing.T) {
		userID := kernel.NewUUID()

		inq, err := inquiry.NewInquiry(
			kernel.NewUUID(), "Priya Sharma", "priya@example.com",
			"Pricing", "Do you handle statistics-heavy dissertations?",
			"dashboard", &userID, testNow,
		)

		require.NoError(t, err)
		require.NotNil(t, inq.UserID())
		assert.True(t, inq.UserID().IsEqual(userID))
	})

	t.Run("rejects_blank_name", func(t *testing.T) {
		_, err := inquiry.NewInquiry(
			kernel.NewUUID(), "   ", "priya@example.com",
			"Pricing", "Do you handle statistics-heavy dissertations?",
			"contact-page", nil, testNow,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_malformed_email", func(t *testing.T) {
		_, err := inquiry.NewInquiry(
			kernel.NewUUID(), "Priya Sharma", "not-an-email",
			"Pricing", "Do you handle statistics-heavy dissertations?",
			"contact-page", nil, testNow,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_short_message", func(t *testing.T) {
		_, err := inquiry.NewInquiry(
			kernel.NewUUID(), "Priya Sharma", "priya@example.com",
			"Pricing", "too short", "contact-page", nil, testNow,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "message")
	})
}

func TestRestoreInquiry(t *testing.T) {
	t.Run("restores_answered_inquiry", func(t *testing.T) {
		responded := testNow.Add(2 * time.Hour)

		inq, err := inquiry.RestoreInquiry(
			kernel.NewUUID(), "Priya Sharma", "priya@example.com",
			"Pricing", "Do you handle statistics-heavy dissertations?",
			"contact-page", nil,
			inquiry.Resolved, inquiry.High, "quoted over email", &responded, testNow,
		)

		require.NoError(t, err)
		assert.Equal(t, inquiry.Resolved, inq.Status())
		assert.Equal(t, inquiry.High, inq.Priority())
		assert.Equal(t, "quoted over email", inq.Notes())
		require.NotNil(t, inq.RespondedAt())
		assert.Equal(t, responded, *inq.RespondedAt())
	})

	t.Run("rejects_answered_stamp_on_new_inquiry", func(t *testing.T) {
		responded := testNow.Add(2 * time.Hour)

		_, err := inquiry.RestoreInquiry(
			kernel.NewUUID(), "Priya Sharma", "priya@example.com",
			"Pricing", "Do you handle statistics-heavy dissertations?",
			"contact-page", nil,
			inquiry.New, inquiry.Normal, "", &responded, testNow,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_stamp_on_resolved_inquiry", func(t *testing.T) {
		_, err := inquiry.RestoreInquiry(
			kernel.NewUUID(), "Priya Sharma", "priya@example.com",
			"Pricing", "Do you handle statistics-heavy dissertations?",
			"contact-page", nil,
			inquiry.Resolved, inquiry.Normal, "", nil, testNow,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestInquiry_ChangeStatus(t *testing.T) {
	t.Run("first_move_away_from_new_stamps_responded_at", func(t *testing.T) {
		inq := newTestInquiry(t)
		respondedAt := testNow.Add(time.Hour)

		require.NoError(t, inq.ChangeStatus(inquiry.InProgress, respondedAt))

		require.NotNil(t, inq.RespondedAt())
		assert.Equal(t, respondedAt, *inq.RespondedAt())
	})

	t.Run("later_changes_keep_the_first_stamp", func(t *testing.T) {
		inq := newTestInquiry(t)
		first := testNow.Add(time.Hour)
		require.NoError(t, inq.ChangeStatus(inquiry.InProgress, first))

		require.NoError(t, inq.ChangeStatus(inquiry.Resolved, testNow.Add(48*time.Hour)))
		require.NoError(t, inq.ChangeStatus(inquiry.Closed, testNow.Add(72*time.Hour)))

		assert.Equal(t, first, *inq.RespondedAt())
	})

	t.Run("responded_at_cannot_be_mutated_through_getter", func(t *testing.T) {
		inq := newTestInquiry(t)
		respondedAt := testNow.Add(time.Hour)
		require.NoError(t, inq.ChangeStatus(inquiry.InProgress, respondedAt))

		*inq.RespondedAt() = testNow.AddDate(1, 0, 0)

		assert.Equal(t, respondedAt, *inq.RespondedAt())
	})

	t.Run("cannot_return_to_new", func(t *testing.T) {
		inq := newTestInquiry(t)
		require.NoError(t, inq.ChangeStatus(inquiry.InProgress, testNow))

		err := inq.ChangeStatus(inquiry.New, testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, inquiry.InProgress, inq.Status())
	})

	t.Run("closed_inquiry_can_be_reopened_to_in_progress", func(t *testing.T) {
		inq := newTestInquiry(t)
		require.NoError(t, inq.ChangeStatus(inquiry.Closed, testNow))

		require.NoError(t, inq.ChangeStatus(inquiry.InProgress, testNow))
		assert.Equal(t, inquiry.InProgress, inq.Status())
	})
}

func TestInquiry_Escalate(t *testing.T) {
	t.Run("bumps_until_urgent", func(t *testing.T) {
		inq := newTestInquiry(t)

		assert.True(t, inq.Escalate())
		assert.Equal(t, inquiry.High, inq.Priority())

		assert.True(t, inq.Escalate())
		assert.Equal(t, inquiry.Urgent, inq.Priority())

		assert.False(t, inq.Escalate())
		assert.Equal(t, inquiry.Urgent, inq.Priority())
	})
}

func TestInquiry_ChangePriority(t *testing.T) {
	t.Run("sets_valid_priority", func(t *testing.T) {
		inq := newTestInquiry(t)

		require.NoError(t, inq.ChangePriority(inquiry.Low))
		assert.Equal(t, inquiry.Low, inq.Priority())
	})

	t.Run("rejects_unknown_priority", func(t *testing.T) {
		inq := newTestInquiry(t)

		require.Error(t, inq.ChangePriority(inquiry.PriorityUnknown))
		assert.Equal(t, inquiry.Normal, inq.Priority())
	})
}

func TestStatusFromString(t *testing.T) {
	for _, s := range []inquiry.Status{inquiry.New, inquiry.InProgress, inquiry.Resolved, inquiry.Closed} {
		t.Run(s.String(), func(t *testing.T) {
			parsed, err := inquiry.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		})
	}

	t.Run("rejects_unknown", func(t *testing.T) {
		_, err := inquiry.StatusFromString("unknown")
		require.Error(t, err)
	})
}

func TestPriorityFromString(t *testing.T) {
	for _, p := range []inquiry.Priority{inquiry.Low, inquiry.Normal, inquiry.High, inquiry.Urgent} {
		t.Run(p.String(), func(t *testing.T) {
			parsed, err := inquiry.PriorityFromString(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, parsed)
		})
	}
}

func TestInquiry_Validate(t *testing.T) {
	t.Run("nil_inquiry_fails", func(t *testing.T) {
		var inq *inquiry.Inquiry
		assert.Equal(t, inquiry.ErrInquiryIsNotConstructed, inq.Validate())
	})
}
