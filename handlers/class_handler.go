package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/models"
)

type ClassHandler struct{}

func NewClassHandler() *ClassHandler { return &ClassHandler{} }

type classPayload struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description"`
	TeacherID   *uint  `json:"teacher_id"`
}

// GET /api/classes — all classes with teacher, sections and an active-student
// count, ordered by name.
func (h *ClassHandler) List(c echo.Context) error {
	var classes []models.Class
	err := database.DB.
		Preload("Teacher").Preload("Teacher.User").
		Preload("Sections").
		Preload("Students", "is_active = ?", true).
		Order("name ASC").
		Find(&classes).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	out := make([]map[string]any, 0, len(classes))
	for _, cl := range classes {
		out = append(out, map[string]any{
			"id":            cl.ID,
			"name":          cl.Name,
			"description":   cl.Description,
			"teacher_id":    cl.TeacherID,
			"teacher":       cl.Teacher,
			"sections":      cl.Sections,
			"student_count": len(cl.Students),
			"created_at":    cl.CreatedAt,
			"updated_at":    cl.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"classes": out})
}

// GET /api/classes/:id
func (h *ClassHandler) Get(c echo.Context) error {
	id := c.Param("id")
	var cl models.Class
	err := database.DB.
		Preload("Teacher").Preload("Teacher.User").
		Preload("Sections").
		Preload("Students", "is_active = ?", true).
		First(&cl, "id = ?", id).Error
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, cl)
}

// POST /api/classes
func (h *ClassHandler) Create(c echo.Context) error {
	var p classPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	var dup models.Class
	if err := database.DB.Where("name = ?", p.Name).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "CLASS_EXISTS"})
	}

	cl := models.Class{Name: p.Name, Description: p.Description, TeacherID: p.TeacherID}
	if err := database.DB.Create(&cl).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusCreated, cl)
}

// PUT /api/classes/:id
func (h *ClassHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var cl models.Class
	if err := database.DB.First(&cl, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}

	var p classPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	cl.Name = p.Name
	cl.Description = p.Description
	cl.TeacherID = p.TeacherID
	if err := database.DB.Save(&cl).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, cl)
}

// DELETE /api/classes/:id
func (h *ClassHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	var cl models.Class
	if err := database.DB.First(&cl, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}
	if err := database.DB.Delete(&cl).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.NoContent(http.StatusNoContent)
}
