package http

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

// parsePagination reads the optional page and limit query parameters.
// Zero values mean "use the query's defaults".
func parsePagination(ctx echo.Context) (page, limit int, err error) {
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("page must be an integer: %w", err)
		}
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("limit must be an integer: %w", err)
		}
	}
	return page, limit, nil
}
