package http

import (
	"github.com/gofiber/fiber/v2"
)

// MaxBodySize bounds request bodies; uploaded CVs are the largest.
const MaxBodySize = 15 << 20

// NewApp returns a Fiber app configured for the service.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             MaxBodySize,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return Error(c, code, err.Error())
		},
	})
	app.Use(RequestID())
	return app
}

// Register wires all HTTP routes onto given Fiber app. adminOnly guards the
// CV operations that render or write.
func Register(app *fiber.App, h *Handler, health *HealthHandler, adminOnly fiber.Handler) {
	api := app.Group("/api")

	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Post("/auth/login", h.Login)

	api.Get("/site", h.Site)
	api.Get("/profile", h.Profile)
	api.Get("/projects", h.Projects())
	api.Get("/experience", h.Experience())
	api.Get("/education", h.Education())
	api.Get("/skills", h.Skills())
	api.Get("/languages", h.Languages())

	api.Get("/cv", h.GetCV)
	api.Post("/cv", adminOnly, h.UploadCV)
	api.Post("/cv/publish", adminOnly, h.PublishCV)
	api.Get("/cv/download", adminOnly, h.DownloadCV)
	api.Get("/cv/preview", adminOnly, h.PreviewCV)
}
