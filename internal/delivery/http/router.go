package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skyglass/weather-widget/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, controller *service.Controller) {
	handler := NewHandler(controller)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/state", handler.GetState)
		api.Post("/lookup", handler.Lookup)
		api.Get("/weather", handler.GetWeather)
	}
}

// ErrorHandler renders errors as a JSON envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
