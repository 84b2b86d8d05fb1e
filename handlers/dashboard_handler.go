package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/models"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// GET /api/dashboard — entity counts plus today's attendance by status.
func (h *DashboardHandler) Stats(c echo.Context) error {
	var (
		cntStudents int64
		cntTeachers int64
		cntClasses  int64
	)
	database.DB.Model(&models.Student{}).Where("is_active = ?", true).Count(&cntStudents)
	database.DB.Model(&models.Teacher{}).Count(&cntTeachers)
	database.DB.Model(&models.Class{}).Count(&cntClasses)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	type statusCount struct {
		Status string
		N      int64
	}
	var rows []statusCount
	err := database.DB.Model(&models.AttendanceRecord{}).
		Select("status, COUNT(*) AS n").
		Where("date >= ? AND date < ?", today, today.AddDate(0, 0, 1)).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	attendance := map[string]int64{
		models.AttendancePresent: 0,
		models.AttendanceAbsent:  0,
		models.AttendanceLate:    0,
		models.AttendanceExcused: 0,
	}
	for _, r := range rows {
		attendance[r.Status] = r.N
	}

	return c.JSON(http.StatusOK, map[string]any{
		"students":         cntStudents,
		"teachers":         cntTeachers,
		"classes":          cntClasses,
		"attendance_today": attendance,
	})
}
