package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/models"
)

type SubjectHandler struct{}

func NewSubjectHandler() *SubjectHandler { return &SubjectHandler{} }

type subjectPayload struct {
	Name      string `json:"name" validate:"required,min=1,max=80"`
	Code      string `json:"code" validate:"required,min=1,max=20"`
	TeacherID *uint  `json:"teacher_id"`
	ClassID   *uint  `json:"class_id"`
}

// GET /api/subjects?classId=&teacherId=
func (h *SubjectHandler) List(c echo.Context) error {
	classID := atoiOr(c.QueryParam("classId"), 0)
	teacherID := atoiOr(c.QueryParam("teacherId"), 0)

	tx := database.DB.Model(&models.Subject{})
	if classID > 0 {
		tx = tx.Where("class_id = ?", classID)
	}
	if teacherID > 0 {
		tx = tx.Where("teacher_id = ?", teacherID)
	}

	var items []models.Subject
	if err := tx.Order("code ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"subjects": items})
}

// POST /api/subjects
func (h *SubjectHandler) Create(c echo.Context) error {
	var p subjectPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	var dup models.Subject
	if err := database.DB.Where("code = ?", p.Code).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "SUBJECT_EXISTS"})
	}

	s := models.Subject{Name: p.Name, Code: p.Code, TeacherID: p.TeacherID, ClassID: p.ClassID}
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /api/subjects/:id
func (h *SubjectHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var s models.Subject
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}

	var p subjectPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	s.Name = p.Name
	s.Code = p.Code
	s.TeacherID = p.TeacherID
	s.ClassID = p.ClassID
	if err := database.DB.Save(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, s)
}

// DELETE /api/subjects/:id
func (h *SubjectHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	var s models.Subject
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}
	if err := database.DB.Delete(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.NoContent(http.StatusNoContent)
}
