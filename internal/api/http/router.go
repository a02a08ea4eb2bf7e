package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safevoice/report-service/internal/api/http/handlers"
	"github.com/safevoice/report-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Reports        *handlers.ReportsHandler
	Helpline       *handlers.HelplineHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads are public with optional
// authentication (so authors see their own anonymous reports attributed);
// every mutation requires a principal.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Users.Me)
	authGroup.Patch("/me", cfg.AuthMiddleware.Handle, cfg.Users.UpdateMe)

	reports := app.Group("/reports")
	reports.Get("/", cfg.AuthMiddleware.HandleOptional, cfg.Reports.ListReports)
	reports.Post("/", cfg.AuthMiddleware.Handle, cfg.Reports.CreateReport)
	reports.Get("/:id", cfg.AuthMiddleware.HandleOptional, cfg.Reports.GetReport)
	reports.Get("/:id/replies", cfg.AuthMiddleware.HandleOptional, cfg.Reports.ListReplies)
	reports.Post("/:id/replies", cfg.AuthMiddleware.Handle, cfg.Reports.CreateReply)
	reports.Post("/:id/replies/:replyId/upvote", cfg.AuthMiddleware.Handle, cfg.Reports.EndorseReply)
	reports.Patch("/:id/status", cfg.AuthMiddleware.Handle, auth.RequireVerifiedHelper(), cfg.Reports.TransitionStatus)

	helpline := app.Group("/helpline")
	helpline.Get("/contacts", cfg.Helpline.Contacts)
	helpline.Get("/resources", cfg.Helpline.Resources)
}
