package handlers

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/models"
)

// setupDB points the package-global DB at a fresh in-memory database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	database.DB = db
	return db
}

func newRequest(e *echo.Echo, method, path string, data ...[]byte) (echo.Context, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	return ctx, rec
}

func createStudent(t *testing.T, db *gorm.DB, first, last, admissionNo string, classID *uint) models.Student {
	t.Helper()
	s := models.Student{
		FirstName:   first,
		LastName:    last,
		AdmissionNo: admissionNo,
		ClassID:     classID,
		IsActive:    true,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return s
}
