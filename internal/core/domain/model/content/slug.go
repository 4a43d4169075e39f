package content

import (
	"fmt"
	"regexp"

	"scribeassist/internal/pkg/errs"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Slug is a URL-safe identifier derived from a title: lowercase
// alphanumerics separated by single hyphens, no leading or trailing hyphen.
// Uniqueness within a collection is the slug service's and ultimately the
// storage layer's concern; the type only guards the shape.
type Slug string

// SlugFromString validates a stored slug representation.
func SlugFromString(s string) (Slug, error) {
	slug := Slug(s)
	if err := slug.Validate(); err != nil {
		return "", err
	}
	return slug, nil
}

// String returns the wire representation.
func (s Slug) String() string {
	return string(s)
}

// Validate checks the lowercase hyphen-separated shape.
func (s Slug) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if !slugPattern.MatchString(string(s)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"slug",
			fmt.Errorf("%q does not match %s", s, slugPattern),
		)
	}
	return nil
}
