package services_test

import (
	"context"
	"errors"
	"testing"

	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  content.Slug
	}{
		{title: "Essay Writing", want: "essay-writing"},
		{title: "Top 10 Thesis Tips!", want: "top-10-thesis-tips"},
		{title: "  APA vs. MLA: Which One?  ", want: "apa-vs-mla-which-one"},
		{title: "already-a-slug", want: "already-a-slug"},
		{title: "Multiple   spaces -- and  hyphens", want: "multiple-spaces-and-hyphens"},
		{title: "!!!", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, services.Slugify(tt.title), "title=%q", tt.title)
	}
}

func TestUniqueSlug(t *testing.T) {
	ctx := context.Background()

	takenOracle := func(taken ...content.Slug) services.SlugExistsFunc {
		set := make(map[content.Slug]bool, len(taken))
		for _, s := range taken {
			set[s] = true
		}
		return func(_ context.Context, slug content.Slug) (bool, error) {
			return set[slug], nil
		}
	}

	t.Run("free_base_is_used_directly", func(t *testing.T) {
		slug, err := services.UniqueSlug(ctx, "Essay Writing", takenOracle())

		require.NoError(t, err)
		assert.Equal(t, content.Slug("essay-writing"), slug)
	})

	t.Run("collision_appends_numeric_suffix", func(t *testing.T) {
		slug, err := services.UniqueSlug(ctx, "Essay Writing", takenOracle("essay-writing"))

		require.NoError(t, err)
		assert.Equal(t, content.Slug("essay-writing-1"), slug)
	})

	t.Run("probes_sequentially_past_taken_suffixes", func(t *testing.T) {
		slug, err := services.UniqueSlug(ctx, "Essay Writing",
			takenOracle("essay-writing", "essay-writing-1", "essay-writing-2"))

		require.NoError(t, err)
		assert.Equal(t, content.Slug("essay-writing-3"), slug)
	})

	t.Run("exhausted_probes_is_a_conflict", func(t *testing.T) {
		everythingTaken := func(context.Context, content.Slug) (bool, error) { return true, nil }

		_, err := services.UniqueSlug(ctx, "Essay Writing", everythingTaken)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("oracle_errors_propagate", func(t *testing.T) {
		oracleErr := errors.New("connection reset")
		failing := func(context.Context, content.Slug) (bool, error) { return false, oracleErr }

		_, err := services.UniqueSlug(ctx, "Essay Writing", failing)

		require.ErrorIs(t, err, oracleErr)
	})

	t.Run("title_with_no_usable_characters_is_invalid", func(t *testing.T) {
		_, err := services.UniqueSlug(ctx, "???", takenOracle())

		require.Error(t, err)
	})
}
