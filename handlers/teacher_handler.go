package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/models"
)

type TeacherHandler struct{}

func NewTeacherHandler() *TeacherHandler { return &TeacherHandler{} }

type teacherCreatePayload struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Address  string `json:"address"`
}

type teacherUpdatePayload struct {
	Name    string `json:"name" validate:"omitempty,min=2,max=120"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Address string `json:"address"`
}

// GET /api/teachers?page=&limit=&search=
// Search matches the linked user's name or email.
func (h *TeacherHandler) List(c echo.Context) error {
	page, limit := pageLimit(c)
	search := strings.TrimSpace(c.QueryParam("search"))

	tx := database.DB.Model(&models.Teacher{}).
		Select("teachers.*").
		Joins("JOIN users ON users.id = teachers.user_id")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}

	var items []models.Teacher
	err := tx.Preload("User").Preload("Subjects").Preload("Classes").
		Order("teachers.created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&items).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, paginated("teachers", items, total, page, limit))
}

// GET /api/teachers/:id
func (h *TeacherHandler) Get(c echo.Context) error {
	id := c.Param("id")
	var t models.Teacher
	err := database.DB.Preload("User").Preload("Subjects").Preload("Classes").
		First(&t, "id = ?", id).Error
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// POST /api/teachers — creates the User principal and the Teacher profile in
// one transaction.
func (h *TeacherHandler) Create(c echo.Context) error {
	var p teacherCreatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	var dup models.User
	if err := database.DB.Where("email = ?", p.Email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "EMAIL_EXISTS"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "HASH_FAILED"})
	}

	var t models.Teacher
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		u := models.User{
			Email:    p.Email,
			Name:     p.Name,
			Password: string(hash),
			Role:     models.RoleTeacher,
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		t = models.Teacher{UserID: u.ID, Phone: p.Phone, Address: p.Address}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		t.User = u
		return nil
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusCreated, t)
}

// PUT /api/teachers/:id
func (h *TeacherHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var t models.Teacher
	if err := database.DB.Preload("User").First(&t, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}

	var p teacherUpdatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "detail": err.Error()})
	}

	t.Phone = p.Phone
	t.Address = p.Address
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if p.Name != "" {
			if err := tx.Model(&t.User).Update("name", p.Name).Error; err != nil {
				return err
			}
			t.User.Name = p.Name
		}
		return tx.Save(&t).Error
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, t)
}

// DELETE /api/teachers/:id — removes the profile and its User principal.
func (h *TeacherHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	var t models.Teacher
	if err := database.DB.First(&t, "id = ?", id).Error; err != nil {
		return serviceError(c, err)
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Teacher{}, t.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, t.UserID).Error
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.NoContent(http.StatusNoContent)
}
