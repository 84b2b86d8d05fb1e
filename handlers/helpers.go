package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/iamaakashks/school-management-system/services"
)

var validate = validator.New()

// string -> int with fallback
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// serviceError maps tagged service errors onto responses; anything untagged
// is a storage failure.
func serviceError(c echo.Context, err error) error {
	switch {
	case services.IsValidation(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "VALIDATION_ERROR", "detail": err.Error()})
	case services.IsNotFound(err), errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	case services.IsConflict(err):
		return c.JSON(http.StatusConflict, map[string]string{"error": "CONFLICT"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
}

// pagination envelope shared by the list endpoints
func paginated(key string, items any, total int64, page, limit int) map[string]any {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return map[string]any{
		key: items,
		"pagination": map[string]any{
			"total": total,
			"pages": pages,
			"page":  page,
			"limit": limit,
		},
	}
}

// page/limit query params with the usual clamping
func pageLimit(c echo.Context) (int, int) {
	page := atoiOr(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := atoiOr(c.QueryParam("limit"), 10)
	if limit < 1 {
		limit = 1
	} else if limit > 100 {
		limit = 100
	}
	return page, limit
}
