package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iamaakashks/school-management-system/config"
	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/handlers"
	"github.com/iamaakashks/school-management-system/middlewares"
	"github.com/iamaakashks/school-management-system/models"
	"github.com/iamaakashks/school-management-system/services"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	attSvc := services.NewAttendanceService(database.DB)
	board := services.NewAnnouncementBoard()

	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	std := handlers.NewStudentHandler()
	tch := handlers.NewTeacherHandler()
	cls := handlers.NewClassHandler()
	sec := handlers.NewSectionHandler()
	sub := handlers.NewSubjectHandler()
	att := handlers.NewAttendanceHandler(attSvc)
	ann := handlers.NewAnnouncementHandler(board)
	dash := handlers.NewDashboardHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/auth/login", auth.Login)

	// ===== Authenticated API =====
	api := e.Group("/api", middlewares.RequireAuth(cfg.JWTSecret))
	adminOnly := middlewares.RequireRole(models.RoleAdmin)

	api.GET("/students", std.List)
	api.GET("/students/:id", std.Get)
	api.POST("/students", std.Create)
	api.PUT("/students/:id", std.Update)
	api.DELETE("/students/:id", std.Delete, adminOnly)

	api.GET("/teachers", tch.List)
	api.GET("/teachers/:id", tch.Get)
	api.POST("/teachers", tch.Create, adminOnly)
	api.PUT("/teachers/:id", tch.Update, adminOnly)
	api.DELETE("/teachers/:id", tch.Delete, adminOnly)

	api.GET("/classes", cls.List)
	api.GET("/classes/:id", cls.Get)
	api.POST("/classes", cls.Create, adminOnly)
	api.PUT("/classes/:id", cls.Update, adminOnly)
	api.DELETE("/classes/:id", cls.Delete, adminOnly)

	api.GET("/sections", sec.List)
	api.POST("/sections", sec.Create, adminOnly)
	api.PUT("/sections/:id", sec.Update, adminOnly)
	api.DELETE("/sections/:id", sec.Delete, adminOnly)

	api.GET("/subjects", sub.List)
	api.POST("/subjects", sub.Create, adminOnly)
	api.PUT("/subjects/:id", sub.Update, adminOnly)
	api.DELETE("/subjects/:id", sub.Delete, adminOnly)

	api.GET("/attendance", att.List)
	api.POST("/attendance", att.Mark)

	api.GET("/announcements", ann.List)
	api.GET("/announcements/:id", ann.Get)
	api.POST("/announcements", ann.Create)
	api.PUT("/announcements/:id", ann.Update)
	api.DELETE("/announcements/:id", ann.Delete)

	api.GET("/dashboard", dash.Stats)
}
