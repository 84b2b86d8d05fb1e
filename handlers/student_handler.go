package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

type studentPayload struct {
	FirstName     string `json:"first_name" validate:"required,min=2,max=50"`
	LastName      string `json:"last_name" validate:"required,min=2,max=50"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	RollNo        string `json:"roll_no" validate:"omitempty,max=20"`
	FatherName    string `json:"father_name" validate:"omitempty,max=100"`
	MotherName    string `json:"mother_name" validate:"omitempty,max=100"`
	GuardianPhone string `json:"guardian_phone" validate:"omitempty,max=20"`
	ClassID       *uint  `json:"class_id"`
	SectionID     *uint  `json:"section_id"`
}

func (p *studentPayload) normalize() {
	p.FirstName = strings.Join(strings.Fields(p.FirstName), " ")
	p.LastName = strings.Join(strings.Fields(p.LastName), " ")
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
	p.DateOfBirth = strings.TrimSpace(p.DateOfBirth)
	p.RollNo = strings.TrimSpace(p.RollNo)
	p.FatherName = strings.TrimSpace(p.FatherName)
	p.MotherName = strings.TrimSpace(p.MotherName)
	p.GuardianPhone = strings.TrimSpace(p.GuardianPhone)
}

func (p *studentPayload) apply(s *models.Student) {
	s.FirstName = p.FirstName
	s.LastName = p.LastName
	s.Email = p.Email
	s.Phone = p.Phone
	s.Address = p.Address
	s.RollNo = p.RollNo
	s.FatherName = p.FatherName
	s.MotherName = p.MotherName
	s.GuardianPhone = p.GuardianPhone
	s.ClassID = p.ClassID
	s.SectionID = p.SectionID
	if p.DateOfBirth != "" {
		if b, err := time.Parse("2006-01-02", p.DateOfBirth); err == nil {
			s.DateOfBirth = &b
		}
	} else {
		s.DateOfBirth = nil
	}
}

// newAdmissionNo issues codes like ADM202608293041; uniqueness is ultimately
// guarded by the admission_no unique index.
func newAdmissionNo() string {
	return fmt.Sprintf("ADM%s%04d", time.Now().UTC().Format("20060102"), rand.Intn(10000))
}

// GET /api/students?page=&limit=&search=&classId=
// Lists active students only; search matches name and admission number.
func (h *StudentHandler) List(c echo.Context) error {
	page, limit := pageLimit(c)
	search := strings.TrimSpace(c.QueryParam("search"))
	classID := atoiOr(c.QueryParam("classId"), 0)

	tx := database.DB.Model(&models.Student{}).Where("is_active = ?", true)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(admission_no) LIKE ?",
			like, like, like)
	}
	if classID > 0 {
		tx = tx.Where("class_id = ?", classID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}

	var items []models.Student
	err := tx.Preload("Class").Preload("Section").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&items).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, paginated("students", items, total, page, limit))
}

// GET /api/students/:id — includes the ten most recent attendance records.
func (h *StudentHandler) Get(c echo.Context) error {
	id := c.Param("id")
	var s models.Student
	if err := database.DB.Preload("Class").Preload("Section").First(&s, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}

	var recent []models.AttendanceRecord
	if err := database.DB.Where("student_id = ?", s.ID).
		Order("date DESC").Limit(10).Find(&recent).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"student":    s,
		"attendance": recent,
	})
}

// POST /api/students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	s := models.Student{AdmissionNo: newAdmissionNo(), IsActive: true}
	p.apply(&s)
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /api/students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.Student
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}

	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	p.apply(&existing)
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /api/students/:id — soft delete; attendance history is kept.
func (h *StudentHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	var s models.Student
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}
	if err := database.DB.Model(&s).Update("is_active", false).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Student deleted successfully"})
}
