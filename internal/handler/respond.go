package handler

import (
	"net/http"
	"strconv"

	"finder-service/internal/service"

	"github.com/labstack/echo/v4"
)

// respondError maps a domain error onto its HTTP status
func respondError(c echo.Context, err error) error {
	switch {
	case service.IsInvalidArgument(err):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case service.IsNotFound(err):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}

// pathID parses the numeric :id path parameter
func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pagination reads the page/per_page collection parameters with the
// documented defaults
func pagination(c echo.Context) (page, perPage int) {
	page = 1
	perPage = 10
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("per_page")); err == nil && v > 0 {
		perPage = v
	}
	return page, perPage
}
