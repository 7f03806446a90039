package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/internhub/internship-service/internal/api/http/handlers"
	"github.com/internhub/internship-service/internal/auth"
	"github.com/internhub/internship-service/internal/domain"
	"github.com/internhub/internship-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Internships    *handlers.InternshipsHandler
	Applications   *handlers.ApplicationsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
	// EnforceAuth puts bearer-token and role guards in front of write routes.
	EnforceAuth bool
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)

	createInternship := []fiber.Handler{cfg.Internships.Create}
	listApplications := []fiber.Handler{cfg.Applications.ListForUser}
	updateApplication := []fiber.Handler{cfg.Applications.UpdateStatus}
	if cfg.EnforceAuth && cfg.AuthMiddleware != nil {
		authn := cfg.AuthMiddleware.Handle
		createInternship = append([]fiber.Handler{authn, auth.RequireRole(domain.RoleCompany, domain.RoleAdmin)}, createInternship...)
		listApplications = append([]fiber.Handler{authn, auth.RequireSelfOrRole("user_id", domain.RoleAdmin)}, listApplications...)
		updateApplication = append([]fiber.Handler{authn, auth.RequireRole(domain.RoleCompany, domain.RoleAdmin)}, updateApplication...)
	}

	api.Post("/internships", createInternship...)
	api.Get("/internships", cfg.Internships.List)
	api.Get("/internships/:id", cfg.Internships.Get)

	api.Post("/applications", cfg.Applications.Submit)
	api.Get("/applications/user/:user_id", listApplications...)
	api.Put("/applications/:id", updateApplication...)
}
