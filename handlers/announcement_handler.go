package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iamaakashks/school-management-system/services"
)

type AnnouncementHandler struct {
	board *services.AnnouncementBoard
}

func NewAnnouncementHandler(board *services.AnnouncementBoard) *AnnouncementHandler {
	return &AnnouncementHandler{board: board}
}

// GET /api/announcements
func (h *AnnouncementHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"announcements": h.board.List()})
}

// GET /api/announcements/:id
func (h *AnnouncementHandler) Get(c echo.Context) error {
	a, err := h.board.Get(c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// POST /api/announcements
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var a services.Announcement
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	created, err := h.board.Create(a)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// PUT /api/announcements/:id
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var a services.Announcement
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	updated, err := h.board.Update(c.Param("id"), a)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DELETE /api/announcements/:id
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	if err := h.board.Delete(c.Param("id")); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
