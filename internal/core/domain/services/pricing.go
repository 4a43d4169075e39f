package services

import (
	"math"
	"time"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/pkg/errs"
)

// Base rate per page in INR by academic level.
const (
	HighSchoolRate = 250
	BachelorRate   = 350
	MasterRate     = 450
	PhDRate        = 750

	// FallbackRate is charged for an academic level the rate table does not
	// know. Falling back to the cheapest tier instead of rejecting is a
	// compatibility behavior carried over from the original pricing table;
	// call sites that accept free-form level values log a warning when it
	// kicks in, because a silently mispriced order is otherwise invisible.
	FallbackRate = HighSchoolRate
)

// PricingEngine computes price quotes. It is a pure function over its
// inputs: no clock, no storage, identical inputs always produce identical
// quotes.
type PricingEngine struct{}

// NewPricingEngine creates a PricingEngine.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

func ratePerPage(level order.AcademicLevel) (int, bool) {
	switch level {
	case order.HighSchool:
		return HighSchoolRate, true
	case order.Bachelor:
		return BachelorRate, true
	case order.Master:
		return MasterRate, true
	case order.PhD:
		return PhDRate, true
	default:
		return FallbackRate, false
	}
}

// UrgencyMultiplier maps days remaining until the deadline to the price
// scaling factor. Thresholds are evaluated descending, first match wins:
//
//	days >= 14 -> 1.0
//	days >=  7 -> 1.3
//	days >=  3 -> 1.6
//	days >=  2 -> 2.2
//	otherwise  -> 3.0   (under 48 hours, including past-due)
func UrgencyMultiplier(days int) float64 {
	switch {
	case days >= 14:
		return 1.0
	case days >= 7:
		return 1.3
	case days >= 3:
		return 1.6
	case days >= 2:
		return 2.2
	default:
		return 3.0
	}
}

// Quote computes the price for the given inputs.
//
// pageCount must be at least 1. daysUntilDeadline may be any integer,
// including negative; whether a past deadline is an error is the caller's
// decision (order creation rejects it, ad-hoc calculator requests price it
// at the maximum urgency). The total is rounded to the nearest rupee with
// math.Round, the single rounding rule used system-wide.
//
// The second return value reports whether the academic level was found in
// the rate table; false means the fallback rate was charged.
func (PricingEngine) Quote(level order.AcademicLevel, daysUntilDeadline, pageCount int) (order.Quote, bool, error) {
	if pageCount < 1 {
		return order.Quote{}, false, errs.NewValueIsOutOfRangeError("pageCount", pageCount, 1, math.MaxInt)
	}

	rate, known := ratePerPage(level)
	multiplier := UrgencyMultiplier(daysUntilDeadline)
	total := int(math.Round(float64(rate) * multiplier * float64(pageCount)))

	quote, err := order.NewQuote(rate, multiplier, total)
	if err != nil {
		return order.Quote{}, known, err
	}
	return quote, known, nil
}

// DaysUntilDeadline derives the whole-day distance from now to the deadline,
// rounding partial days up: ceil((deadline - now) / 24h). "now" is an
// explicit input because deriving it is the caller's responsibility, keeping
// Quote itself referentially transparent.
func DaysUntilDeadline(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}
