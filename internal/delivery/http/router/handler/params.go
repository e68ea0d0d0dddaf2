package handler

import (
	"strconv"

	domainerrors "chapel/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// defaultListAllPageSize is the page size for the admin listings that include
// unpublished drafts.
const defaultListAllPageSize = 100

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return uint(id), nil
}

// pagination reads the skip/limit query parameters, falling back to the
// given default limit. Malformed or negative values fall back to defaults.
func pagination(c echo.Context, defaultLimit int) (skip, limit int) {
	skip = 0
	limit = defaultLimit

	if raw := c.QueryParam("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			skip = v
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			limit = v
		}
	}

	return skip, limit
}
