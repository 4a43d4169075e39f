package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"scribeassist/internal/core/domain/model/content"
	"scribeassist/internal/pkg/errs"
)

// SlugMaxProbes caps the collision-probing loop. Exhausting it means the
// collection holds that many same-titled entries already, which is treated
// as a conflict rather than probed forever.
const SlugMaxProbes = 100

// SlugExistsFunc is the uniqueness oracle: it reports whether a candidate
// slug is already taken. It is consulted before every probe because the
// collection can change between probes under concurrent writers; the
// storage-layer uniqueness constraint remains the final backstop, and
// callers retry on a storage conflict.
type SlugExistsFunc func(ctx context.Context, slug content.Slug) (bool, error)

// Slugify derives the deterministic base slug from a title: lowercase, every
// maximal run of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens stripped.
func Slugify(title string) content.Slug {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLower(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return content.Slug(b.String())
}

// UniqueSlug resolves a unique slug for the title: the base form if free,
// otherwise base-1, base-2, … probing sequentially until the oracle reports
// a free candidate. Exceeding SlugMaxProbes returns a ConflictError.
func UniqueSlug(ctx context.Context, title string, exists SlugExistsFunc) (content.Slug, error) {
	base := Slugify(title)
	if err := base.Validate(); err != nil {
		return "", err
	}

	candidate := base
	for probe := 1; probe <= SlugMaxProbes; probe++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = content.Slug(fmt.Sprintf("%s-%d", base, probe))
	}

	return "", errs.NewConflictError("slug", base)
}
