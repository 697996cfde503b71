package handler

import (
	"github.com/gofiber/fiber/v2"

	"studyaid/internal/http/middleware"
	"studyaid/internal/ratelimit"
	"studyaid/internal/service"
)

// RouteOptions carries the HTTP-only collaborators of RegisterRoutes.
type RouteOptions struct {
	Upload UploadPolicy
	// Limiter guards the generating POST routes. Nil disables limiting.
	Limiter ratelimit.Limiter
	// Health lists the dependencies probed by /health.
	Health map[string]Pinger
}

// RegisterRoutes attaches the health probes and the /api routes to app.
func RegisterRoutes(app *fiber.App, svc service.StudyService, opts RouteOptions) {
	app.Get("/health", HealthCheck(opts.Health))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	limit := middleware.RateLimit(opts.Limiter)

	api.Get("/documents", ListDocuments(svc))
	api.Post("/upload", limit, UploadDocument(svc, opts.Upload))
	api.Delete("/documents/:id", DeleteDocument(svc))

	api.Get("/study-guides", ListStudyGuides(svc))
	api.Post("/study-guides", limit, GenerateStudyGuide(svc))

	api.Get("/mock-tests", ListMockTests(svc))
	api.Post("/mock-tests", limit, GenerateMockTest(svc))

	api.Get("/test-results", ListTestResults(svc))
	api.Post("/test-results", SubmitTestResult(svc))

	api.Get("/chat", ListChatMessages(svc))
	api.Post("/chat", limit, SendChatMessage(svc))

	api.Get("/reminders", ListReminders(svc))
	api.Post("/reminders", CreateReminder(svc))
	api.Put("/reminders/:id", UpdateReminder(svc))
	api.Patch("/reminders/:id", UpdateReminder(svc))
	api.Delete("/reminders/:id", DeleteReminder(svc))

	api.Get("/dashboard/stats", DashboardStats(svc))
}
