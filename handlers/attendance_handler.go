package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iamaakashks/school-management-system/services"
)

type AttendanceHandler struct {
	svc *services.AttendanceService
}

func NewAttendanceHandler(svc *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// GET /api/attendance?date=YYYY-MM-DD&classId=&studentId=
func (h *AttendanceHandler) List(c echo.Context) error {
	f := services.AttendanceFilter{
		Date:      strings.TrimSpace(c.QueryParam("date")),
		ClassID:   uint(atoiOr(c.QueryParam("classId"), 0)),
		StudentID: uint(atoiOr(c.QueryParam("studentId"), 0)),
	}
	rows, err := h.svc.Query(f)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"attendance": rows})
}

// POST /api/attendance
// Body is either a single assertion object or an array of them (bulk); the
// two modes are told apart by the payload's top-level token.
func (h *AttendanceHandler) Mark(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	if trimmed := bytes.TrimLeft(body, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '[' {
		var batch []services.AttendanceAssertion
		if err := json.Unmarshal(body, &batch); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
		}
		recs, err := h.svc.Submit(batch)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]any{"attendance": recs})
	}

	var one services.AttendanceAssertion
	if err := json.Unmarshal(body, &one); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	recs, err := h.svc.Submit([]services.AttendanceAssertion{one})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, recs[0])
}
