package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tourismweb/admin-backend/internal/config"
	"github.com/tourismweb/admin-backend/internal/handlers"
	"github.com/tourismweb/admin-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	reviewHandler *handlers.ReviewHandler,
	moderationHandler *handlers.ModerationHandler,
	statsHandler *handlers.StatsHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)

	// Reviews — public reads, authenticated writes, admin-only full list
	api.Get("/reviews", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), reviewHandler.ListAll)
	api.Get("/reviews/spot", reviewHandler.ListSpotReviews)
	api.Get("/reviews/:id", reviewHandler.Get)
	api.Post("/reviews", middleware.JWTProtected(cfg), reviewHandler.Create)
	api.Put("/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Update)
	api.Delete("/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Delete)

	// Back-office panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/dashboard", statsHandler.Dashboard)
	admin.Get("/interactions", statsHandler.Interactions)
	admin.Get("/reports", moderationHandler.ListReports)
	admin.Get("/reports/:id", moderationHandler.GetReportDetails)
	admin.Post("/reports/:id/process", moderationHandler.ProcessReport)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/comments", adminHandler.ListComments)
	admin.Get("/settings", adminHandler.GetSettings)
	admin.Put("/settings", adminHandler.UpdateSettings)
}
