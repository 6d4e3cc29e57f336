package handlers

import (
	"strconv"

	"finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// parseID reads a positive int64 path parameter. On failure the 400 response
// has already been written and the returned error should be passed back to echo.
func parseID(c echo.Context, name string) (int64, bool, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false, SendError(c, errors.ValidationInvalidID,
			errors.WithDetails("Invalid "+name+": must be a positive integer"))
	}
	return id, true, nil
}
