package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/penguinfit/penguinfit-backend/internal/config"
	"github.com/penguinfit/penguinfit-backend/internal/handlers"
	"github.com/penguinfit/penguinfit-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	webhookHandler *handlers.WebhookHandler,
	catalogHandler *handlers.CatalogHandler,
	playerHandler *handlers.PlayerHandler,
	legalHandler *handlers.LegalHandler,
	configHandler *handlers.RemoteConfigHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", healthHandler.Check)

	// Remote config (public)
	api.Get("/config", configHandler.GetConfig)

	// Legal pages
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)

	// Catalog (public, static tables)
	api.Get("/catalog/programs", catalogHandler.Programs)
	api.Get("/catalog/programs/:day", catalogHandler.ProgramForDay)
	api.Get("/catalog/shop", catalogHandler.ShopItems)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
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

	// Protected auth routes (JWT required) - apply middleware per route so
	// the public auth group stays public
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Webhooks — shared-secret auth, no JWT
	webhooks := api.Group("/webhooks")
	webhooks.Post("/revenuecat", webhookHandler.HandleRevenueCat)

	// Player routes (JWT required)
	p := api.Group("/p", middleware.JWTProtected(cfg))

	p.Get("/state", playerHandler.GetState)
	p.Put("/state", playerHandler.Mirror)
	p.Post("/state/restore", playerHandler.Restore)
	p.Post("/state/reset", playerHandler.Reset)

	p.Post("/pet/interact", playerHandler.Interact)
	p.Post("/pet/mood/refresh", playerHandler.RefreshMood)
	p.Post("/pet/equip", playerHandler.Equip)
	p.Post("/pet/rename", playerHandler.Rename)

	p.Post("/workouts/complete", playerHandler.CompleteWorkout)
	p.Get("/workouts/history", playerHandler.History)

	p.Post("/shop/buy", playerHandler.Buy)
	p.Get("/badges", playerHandler.Badges)

	p.Put("/profile/weight", playerHandler.SetWeight)

	// Admin config management (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Put("/config/:key", configHandler.SetConfigKey)
	admin.Delete("/config/:key", configHandler.DeleteConfigKey)
}
