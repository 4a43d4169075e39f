// Package content contains the Post aggregate for the public blog and
// samples pages, and the Slug value object that gives every titled piece of
// content its unique URL-safe identifier.
package content
