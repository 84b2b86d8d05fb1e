package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/iamaakashks/school-management-system/config"
	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/middlewares"
	"github.com/iamaakashks/school-management-system/routes"
)

func main() {
	cfg := config.Load()

	// fails fast if the database is not up
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middlewares.Secure())
	e.Use(middlewares.Metrics())

	var counter middlewares.Counter = middlewares.NewWindowCounter()
	if cfg.RedisAddr != "" {
		counter = middlewares.NewRedisCounter(cfg.RedisAddr)
	}
	e.Use(middlewares.RateLimit(counter, int64(cfg.RateLimitMax), cfg.RateLimitWindow))

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
