package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/screening/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	screening *handlers.ScreeningHandler,
	feedback *handlers.FeedbackHandler,
	models *handlers.ModelsHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Resume screening
	sg := v1.Group("/screening", authMW)
	sg.Post("/resumes", screening.Upload)
	sg.Post("/score", screening.Score)
	sg.Get("/candidates", screening.List)
	sg.Get("/candidates/:id", screening.Get)
	sg.Get("/dashboard", screening.Dashboard)

	// HR feedback
	v1.Post("/feedback", authMW, feedback.Submit)

	// Classifier lifecycle
	mg := v1.Group("/models", authMW)
	mg.Get("/status", models.Status)
	mg.Post("/reload", models.Reload)
}
