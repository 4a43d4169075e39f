package http

import (
	"net/http"
	"time"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type calculatePriceRequest struct {
	AcademicLevel     string     `json:"academic_level"`
	PageCount         int        `json:"page_count"`
	DaysUntilDeadline *int       `json:"days_until_deadline"`
	Deadline          *time.Time `json:"deadline"`
}

// CalculatePrice handles POST /api/v1/pricing/calculate. The caller supplies
// either days_until_deadline directly or a deadline timestamp. Unknown
// academic levels are priced at the fallback rate instead of rejected, so
// the public calculator keeps working when the site sends a level the rate
// table has not heard of.
func (s *Server) CalculatePrice(ctx echo.Context) error {
	var req calculatePriceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	var days int
	switch {
	case req.DaysUntilDeadline != nil:
		days = *req.DaysUntilDeadline
	case req.Deadline != nil:
		days = services.DaysUntilDeadline(*req.Deadline, time.Now())
	default:
		return badRequest(ctx, errs.NewValueIsRequiredError("days_until_deadline or deadline"))
	}

	level, err := order.AcademicLevelFromString(req.AcademicLevel)
	if err != nil {
		level = order.AcademicLevelUnknown
	}

	quote, known, err := s.pricing.Quote(level, days, req.PageCount)
	if err != nil {
		return badRequest(ctx, err)
	}
	if !known {
		s.logger.Warn("pricing fell back to the base rate",
			"academic_level", req.AcademicLevel)
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		PricePerPage:      quote.PricePerPage(),
		UrgencyMultiplier: quote.UrgencyMultiplier(),
		TotalPrice:        quote.TotalPrice(),
		Currency:          "INR",
		DaysUntilDeadline: days,
	})
}

// PricingTiersResponse lists the per-page rate table and the urgency
// thresholds so the site can render the calculator without hardcoding them.
type PricingTiersResponse struct {
	Currency    string         `json:"currency"`
	RatesByPage map[string]int `json:"rates_per_page"`
	Urgency     []UrgencyTier  `json:"urgency_tiers"`
}

// UrgencyTier is one row of the urgency multiplier schedule.
type UrgencyTier struct {
	MinDays    int     `json:"min_days"`
	Multiplier float64 `json:"multiplier"`
}

// GetPricingTiers handles GET /api/v1/pricing/tiers.
func (s *Server) GetPricingTiers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, PricingTiersResponse{
		Currency: "INR",
		RatesByPage: map[string]int{
			order.HighSchool.String(): services.HighSchoolRate,
			order.Bachelor.String():   services.BachelorRate,
			order.Master.String():     services.MasterRate,
			order.PhD.String():        services.PhDRate,
		},
		Urgency: []UrgencyTier{
			{MinDays: 14, Multiplier: 1.0},
			{MinDays: 7, Multiplier: 1.3},
			{MinDays: 3, Multiplier: 1.6},
			{MinDays: 2, Multiplier: 2.2},
			{MinDays: 0, Multiplier: 3.0},
		},
	})
}
