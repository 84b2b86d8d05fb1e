package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/models"
	"github.com/iamaakashks/school-management-system/services"
)

func attendanceHandler() *AttendanceHandler {
	return NewAttendanceHandler(services.NewAttendanceService(database.DB))
}

func TestAttendanceMarkSingle(t *testing.T) {
	db := setupDB(t)
	s1 := createStudent(t, db, "Alice", "Johnson", "ADM001", nil)
	h := attendanceHandler()
	e := echo.New()

	body := []byte(fmt.Sprintf(`{"student_id":%d,"date":"2024-01-15","status":"PRESENT"}`, s1.ID))
	ctx, rec := newRequest(e, http.MethodPost, "/api/attendance", body)
	require.NoError(t, h.Mark(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.AttendanceRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, s1.ID, got.StudentID)
	assert.Equal(t, models.AttendancePresent, got.Status)
	assert.NotZero(t, got.ID)

	// same pair again: still one row, new status
	body = []byte(fmt.Sprintf(`{"student_id":%d,"date":"2024-01-15","status":"ABSENT"}`, s1.ID))
	ctx, rec = newRequest(e, http.MethodPost, "/api/attendance", body)
	require.NoError(t, h.Mark(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	db.Model(&models.AttendanceRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAttendanceMarkBulk(t *testing.T) {
	db := setupDB(t)
	s1 := createStudent(t, db, "Alice", "Johnson", "ADM001", nil)
	s2 := createStudent(t, db, "Bob", "Williams", "ADM002", nil)
	h := attendanceHandler()
	e := echo.New()

	body := []byte(fmt.Sprintf(
		`[{"student_id":%d,"date":"2024-01-15","status":"PRESENT"},
		  {"student_id":%d,"date":"2024-01-15","status":"LATE","notes":"Traffic"}]`,
		s1.ID, s2.ID))
	ctx, rec := newRequest(e, http.MethodPost, "/api/attendance", body)
	require.NoError(t, h.Mark(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Attendance []models.AttendanceRecord `json:"attendance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Attendance, 2)
}

func TestAttendanceMarkInvalidStatusIs400(t *testing.T) {
	db := setupDB(t)
	s1 := createStudent(t, db, "Alice", "Johnson", "ADM001", nil)
	h := attendanceHandler()
	e := echo.New()

	body := []byte(fmt.Sprintf(`{"student_id":%d,"date":"2024-01-15","status":"NAPPING"}`, s1.ID))
	ctx, rec := newRequest(e, http.MethodPost, "/api/attendance", body)
	require.NoError(t, h.Mark(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	db.Model(&models.AttendanceRecord{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAttendanceMarkMalformedBody(t *testing.T) {
	setupDB(t)
	h := attendanceHandler()
	e := echo.New()

	ctx, rec := newRequest(e, http.MethodPost, "/api/attendance", []byte(`{not json`))
	require.NoError(t, h.Mark(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceList(t *testing.T) {
	db := setupDB(t)
	s1 := createStudent(t, db, "Alice", "Johnson", "ADM001", nil)
	h := attendanceHandler()
	e := echo.New()

	body := []byte(fmt.Sprintf(
		`[{"student_id":%d,"date":"2024-01-15","status":"PRESENT"},
		  {"student_id":%d,"date":"2024-01-16","status":"ABSENT"}]`, s1.ID, s1.ID))
	ctx, rec := newRequest(e, http.MethodPost, "/api/attendance", body)
	require.NoError(t, h.Mark(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)

	ctx, rec = newRequest(e, http.MethodGet, "/api/attendance?date=2024-01-15")
	require.NoError(t, h.List(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Attendance []services.AttendanceView `json:"attendance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Attendance, 1)
	assert.Equal(t, "Alice", resp.Attendance[0].Student.FirstName)
	assert.Equal(t, "ADM001", resp.Attendance[0].Student.AdmissionNo)
}

func TestAttendanceListBadDateIs400(t *testing.T) {
	setupDB(t)
	h := attendanceHandler()
	e := echo.New()

	ctx, rec := newRequest(e, http.MethodGet, "/api/attendance?date=not-a-date")
	require.NoError(t, h.List(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
