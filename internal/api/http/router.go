package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corpkit/company-portal/internal/api/http/handlers"
	"github.com/corpkit/company-portal/internal/auth"
	"github.com/corpkit/company-portal/internal/domain"
)

// NewApp builds the fiber app. Paths match exactly: no case folding, no trailing-slash aliasing.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
		StrictRouting:         true,
		CaseSensitive:         true,
	})
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Logs           *handlers.LogsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Protected routes run auth.Protect's chain, so the token
// is verified before any role check.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Home)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Post("/login", cfg.Auth.Login)
	app.Get("/verify", append(auth.Protect(cfg.AuthMiddleware), cfg.Auth.Verify)...)

	app.Get("/logs", append(auth.Protect(cfg.AuthMiddleware), cfg.Logs.Mine)...)
	for _, role := range domain.Roles {
		app.Get("/logs/"+role.String(), append(auth.Protect(cfg.AuthMiddleware, role), cfg.Logs.ForRole(role))...)
	}
}
