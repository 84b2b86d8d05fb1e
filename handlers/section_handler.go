package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/models"
)

type SectionHandler struct{}

func NewSectionHandler() *SectionHandler { return &SectionHandler{} }

type sectionPayload struct {
	Name    string `json:"name" validate:"required,min=1,max=20"`
	ClassID uint   `json:"class_id" validate:"required"`
}

// GET /api/sections?classId=
func (h *SectionHandler) List(c echo.Context) error {
	classID := atoiOr(c.QueryParam("classId"), 0)

	tx := database.DB.Model(&models.Section{})
	if classID > 0 {
		tx = tx.Where("class_id = ?", classID)
	}

	var items []models.Section
	if err := tx.Order("class_id ASC, name ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"sections": items})
}

// POST /api/sections — name must be unique within the class.
func (h *SectionHandler) Create(c echo.Context) error {
	var p sectionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	var cls models.Class
	if err := database.DB.First(&cls, "id = ?", p.ClassID).Error; err != nil {
		return serviceError(c, err)
	}

	var dup models.Section
	if err := database.DB.Where("class_id = ? AND name = ?", p.ClassID, p.Name).
		First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "SECTION_EXISTS"})
	}

	s := models.Section{Name: p.Name, ClassID: p.ClassID}
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /api/sections/:id
func (h *SectionHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var s models.Section
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}

	var p sectionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	s.Name = p.Name
	s.ClassID = p.ClassID
	if err := database.DB.Save(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, s)
}

// DELETE /api/sections/:id
func (h *SectionHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	var s models.Section
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}
	if err := database.DB.Delete(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.NoContent(http.StatusNoContent)
}
