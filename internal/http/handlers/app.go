package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"toystore/internal/config"
	applog "toystore/internal/log"
)

// NewApp builds the fiber app with middleware and every toy route mounted.
func NewApp(cfg config.Config, deps *Deps) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	searchLimiter := limiter.New(limiter.Config{
		Max:        cfg.SearchRateMax,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.search.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})

	// ---------- Routes ----------
	h := deps.ToyHandler
	app.Get("/", h.Home)
	app.Get("/healthz", h.Health)

	// /toys/category has to be registered ahead of /toys/:toyId
	app.Get("/toys", h.List)
	app.Get("/toys/category", h.ByCategory)
	app.Get("/toys/:toyId", h.Get)
	app.Post("/toys", h.Create)
	app.Put("/toys/:toyId", h.Update)
	app.Delete("/toys/:toyId", h.Delete)

	app.Get("/my-toys", h.Mine)
	app.Get("/my-toys/search", searchLimiter, h.Search)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "route not found"})
	})
	return app
}
