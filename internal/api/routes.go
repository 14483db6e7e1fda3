package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	onboarding := api.Group("/onboarding", handler.AuthRequired)
	onboarding.Get("", handler.GetOnboarding)
	onboarding.Post("/steps/:step", handler.SubmitStep)
	onboarding.Post("/previous", handler.PreviousStep)
	onboarding.Post("/resume", handler.Resume)
	onboarding.Post("/submit", handler.Submit)
}
