package content_test

import (
	"testing"
	"time"

	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const testBody = "A long-form guide to structuring literature reviews, with worked examples and common pitfalls."

func newTestPost(t *testing.T) *content.Post {
	t.Helper()
	slug, err := content.SlugFromString("structuring-literature-reviews")
	require.NoError(t, err)

	p, err := content.NewPost(
		kernel.NewUUID(),
		"Structuring literature reviews",
		slug,
		"How to structure a literature review",
		testBody,
		"writing-guides",
		[]string{"research", "writing"},
		kernel.NewUUID(),
		testNow,
	)
	require.NoError(t, err)
	return p
}

func TestNewPost(t *testing.T) {
	t.Run("creates_unpublished_post", func(t *testing.T) {
		p := newTestPost(t)

		assert.False(t, p.IsPublished())
		assert.Nil(t, p.PublishedAt())
		assert.Equal(t, content.Slug("structuring-literature-reviews"), p.Slug())
		assert.Equal(t, []string{"research", "writing"}, p.Tags())
	})

	t.Run("rejects_short_body", func(t *testing.T) {
		slug, _ := content.SlugFromString("short-post")

		_, err := content.NewPost(
			kernel.NewUUID(), "Short post", slug, "", "too short",
			"", nil, kernel.NewUUID(), testNow,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "content")
	})

	t.Run("rejects_invalid_slug", func(t *testing.T) {
		_, err := content.NewPost(
			kernel.NewUUID(), "Some title", content.Slug("Bad Slug!"), "", testBody,
			"", nil, kernel.NewUUID(), testNow,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPost_Publish(t *testing.T) {
	t.Run("first_publish_stamps_published_at", func(t *testing.T) {
		p := newTestPost(t)
		at := testNow.Add(time.Hour)

		p.Publish(at)

		assert.True(t, p.IsPublished())
		require.NotNil(t, p.PublishedAt())
		assert.Equal(t, at, *p.PublishedAt())
	})

	t.Run("republish_keeps_the_original_stamp", func(t *testing.T) {
		p := newTestPost(t)
		first := testNow.Add(time.Hour)
		p.Publish(first)
		p.Unpublish()
		assert.False(t, p.IsPublished())

		p.Publish(testNow.Add(48 * time.Hour))

		assert.True(t, p.IsPublished())
		assert.Equal(t, first, *p.PublishedAt())
	})

	t.Run("published_at_cannot_be_mutated_through_getter", func(t *testing.T) {
		p := newTestPost(t)
		at := testNow.Add(time.Hour)
		p.Publish(at)

		*p.PublishedAt() = testNow.AddDate(1, 0, 0)

		assert.Equal(t, at, *p.PublishedAt())
	})
}

func TestPost_Retitle(t *testing.T) {
	t.Run("changes_title_and_slug_together", func(t *testing.T) {
		p := newTestPost(t)
		slug, _ := content.SlugFromString("writing-literature-reviews")

		require.NoError(t, p.Retitle("Writing literature reviews", slug))

		assert.Equal(t, "Writing literature reviews", p.Title())
		assert.Equal(t, slug, p.Slug())
	})

	t.Run("invalid_title_leaves_post_untouched", func(t *testing.T) {
		p := newTestPost(t)
		slug, _ := content.SlugFromString("x")

		err := p.Retitle("abc", slug)

		require.Error(t, err)
		assert.Equal(t, "Structuring literature reviews", p.Title())
		assert.Equal(t, content.Slug("structuring-literature-reviews"), p.Slug())
	})
}

func TestPost_EditBody(t *testing.T) {
	p := newTestPost(t)

	err := p.EditBody("Updated excerpt", testBody+" Now with a revised conclusion section.", "guides", []string{"writing"})

	require.NoError(t, err)
	assert.Equal(t, "Updated excerpt", p.Excerpt())
	assert.Equal(t, "guides", p.Category())
	assert.Equal(t, []string{"writing"}, p.Tags())
}

func TestSlug(t *testing.T) {
	t.Run("accepts_valid_shapes", func(t *testing.T) {
		for _, s := range []string{"essay", "essay-writing", "top-10-tips", "a"} {
			_, err := content.SlugFromString(s)
			assert.NoError(t, err, s)
		}
	})

	t.Run("rejects_invalid_shapes", func(t *testing.T) {
		for _, s := range []string{"", "Essay", "essay writing", "-essay", "essay-", "essay--writing", "essay_writing"} {
			_, err := content.SlugFromString(s)
			assert.Error(t, err, "%q should be rejected", s)
		}
	})
}
