package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/config"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/handlers"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	gameHandler *handlers.GameHandler,
	reviewHandler *handlers.ReviewHandler,
	reactionHandler *handlers.ReactionHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
	videoHandler *handlers.VideoHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Uploaded files, outside the /api rate limiter.
	app.Get("/uploads/:filename", uploadHandler.ServeFile)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes - apply middleware to individual routes so the
	// public ones above stay public.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Patch("/auth/profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)

	// Image uploads. Association with a game happens in a later request.
	api.Post("/upload/image", uploadHandler.UploadImage)

	// Games — public reads
	api.Get("/games", gameHandler.List)
	api.Get("/games/:id", gameHandler.Get)
	api.Post("/games/:id/download", gameHandler.Download)
	api.Get("/games/:id/reviews", reviewHandler.List)

	// Games — authenticated writes
	api.Post("/games", middleware.JWTProtected(cfg), gameHandler.Create)
	api.Patch("/games/:id", middleware.JWTProtected(cfg), gameHandler.Update)
	api.Post("/games/:id/reviews", middleware.JWTProtected(cfg), reviewHandler.Create)
	api.Get("/games/:id/like", middleware.JWTProtected(cfg), reactionHandler.Get)
	api.Post("/games/:id/like", middleware.JWTProtected(cfg), reactionHandler.Set)
	api.Delete("/games/:id/like", middleware.JWTProtected(cfg), reactionHandler.Delete)
	api.Post("/games/:id/report", middleware.JWTProtected(cfg), reportHandler.Create)

	// Featured video — public read
	api.Get("/featured-video", videoHandler.GetLatest)

	// Admin panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Patch("/users/:id", adminHandler.UpdateUser)
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/reports", reportHandler.List)
	admin.Post("/featured-video", videoHandler.Set)

	// Game deletion is admin-only and cascades
	api.Delete("/games/:id", middleware.JWTProtected(cfg), middleware.AdminRequired(db), gameHandler.Delete)
}
