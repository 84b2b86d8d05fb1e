package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamaakashks/school-management-system/models"
)

func TestStudentCreateGeneratesAdmissionNo(t *testing.T) {
	setupDB(t)
	h := NewStudentHandler()
	e := echo.New()

	body := []byte(`{"first_name":"Alice","last_name":"Johnson","email":"alice@example.com"}`)
	ctx, rec := newRequest(e, http.MethodPost, "/api/students", body)
	require.NoError(t, h.Create(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotZero(t, got.ID)
	assert.True(t, got.IsActive)
	assert.Contains(t, got.AdmissionNo, "ADM")
}

func TestStudentCreateValidation(t *testing.T) {
	setupDB(t)
	h := NewStudentHandler()
	e := echo.New()

	// first name too short
	ctx, rec := newRequest(e, http.MethodPost, "/api/students",
		[]byte(`{"first_name":"A","last_name":"Johnson"}`))
	require.NoError(t, h.Create(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// broken email
	ctx, rec = newRequest(e, http.MethodPost, "/api/students",
		[]byte(`{"first_name":"Alice","last_name":"Johnson","email":"nope"}`))
	require.NoError(t, h.Create(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentListPaginationAndSearch(t *testing.T) {
	db := setupDB(t)
	h := NewStudentHandler()
	e := echo.New()

	for i := 0; i < 15; i++ {
		createStudent(t, db, fmt.Sprintf("Student%02d", i), "Test", fmt.Sprintf("ADM%03d", i), nil)
	}
	createStudent(t, db, "Alice", "Johnson", "ADM999", nil)

	ctx, rec := newRequest(e, http.MethodGet, "/api/students?page=2&limit=10")
	require.NoError(t, h.List(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Students   []models.Student `json:"students"`
		Pagination struct {
			Total int64 `json:"total"`
			Pages int   `json:"pages"`
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 16, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Pages)
	assert.Len(t, resp.Students, 6)

	// case-insensitive search on name
	ctx, rec = newRequest(e, http.MethodGet, "/api/students?search=alice")
	require.NoError(t, h.List(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Students, 1)
	assert.Equal(t, "Alice", resp.Students[0].FirstName)
}

func TestStudentSoftDelete(t *testing.T) {
	db := setupDB(t)
	h := NewStudentHandler()
	e := echo.New()
	s := createStudent(t, db, "Alice", "Johnson", "ADM001", nil)

	ctx, rec := newRequest(e, http.MethodDelete, "/api/students/1")
	ctx.SetParamNames("id")
	ctx.SetParamValues(fmt.Sprint(s.ID))
	require.NoError(t, h.Delete(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	// row still exists, just inactive
	var got models.Student
	require.NoError(t, db.First(&got, s.ID).Error)
	assert.False(t, got.IsActive)

	// and the list no longer shows it
	ctx, rec = newRequest(e, http.MethodGet, "/api/students")
	require.NoError(t, h.List(ctx))
	var resp struct {
		Students []models.Student `json:"students"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Students, 0)
}

func TestStudentGetNotFound(t *testing.T) {
	setupDB(t)
	h := NewStudentHandler()
	e := echo.New()

	ctx, rec := newRequest(e, http.MethodGet, "/api/students/42")
	ctx.SetParamNames("id")
	ctx.SetParamValues("42")
	require.NoError(t, h.Get(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
