package order

import (
	"fmt"

	"scribeassist/internal/pkg/errs"
)

// Quote is the immutable result of one price computation: the base rate per
// page, the urgency multiplier applied, and the rounded total in INR.
//
// Quotes are produced by the pricing engine (services package); recomputing
// with identical inputs always yields an identical Quote.
type Quote struct {
	pricePerPage      int
	urgencyMultiplier float64
	totalPrice        int

	isConstructed bool
}

// NewQuote creates a validated Quote. The price per page and total must be
// non-negative and the multiplier at least 1.0.
func NewQuote(pricePerPage int, urgencyMultiplier float64, totalPrice int) (Quote, error) {
	if pricePerPage < 0 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"price per page",
			fmt.Errorf("%d is negative", pricePerPage),
		)
	}
	if urgencyMultiplier < 1.0 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"urgency multiplier",
			fmt.Errorf("%g is less than 1.0", urgencyMultiplier),
		)
	}
	if totalPrice < 0 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"total price",
			fmt.Errorf("%d is negative", totalPrice),
		)
	}

	return Quote{
		pricePerPage:      pricePerPage,
		urgencyMultiplier: urgencyMultiplier,
		totalPrice:        totalPrice,
		isConstructed:     true,
	}, nil
}

// PricePerPage returns the base rate per page in INR.
func (q Quote) PricePerPage() int {
	return q.pricePerPage
}

// UrgencyMultiplier returns the deadline-driven scaling factor.
func (q Quote) UrgencyMultiplier() float64 {
	return q.urgencyMultiplier
}

// TotalPrice returns the rounded order total in INR.
func (q Quote) TotalPrice() int {
	return q.totalPrice
}

// Validate reports whether the quote was created via NewQuote.
func (q Quote) Validate() error {
	if !q.isConstructed {
		return errs.NewValueIsRequiredError("Quote must be created via NewQuote")
	}
	return nil
}
