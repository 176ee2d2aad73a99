package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/skyglass/weather-widget/internal/domain"
	"github.com/skyglass/weather-widget/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	controller *service.Controller
}

// NewHandler creates a new handler
func NewHandler(controller *service.Controller) *Handler {
	return &Handler{controller: controller}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "weather-widget",
		"version": "1.0.0",
	})
}

// GetState returns what the widget currently shows, including the ticking local time
func (h *Handler) GetState(c *fiber.Ctx) error {
	return c.JSON(domain.StateResponse{
		Data:    h.controller.State(),
		Success: true,
	})
}

// Lookup triggers a weather lookup for the city in the request body
func (h *Handler) Lookup(c *fiber.Ctx) error {
	var req domain.LookupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return h.lookup(c, req.City)
}

// GetWeather triggers a lookup for the city query parameter.
// The controller keeps the city after the request ends, so it must not alias fasthttp's buffer.
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	return h.lookup(c, utils.CopyString(c.Query("city")))
}

func (h *Handler) lookup(c *fiber.Ctx, city string) error {
	if strings.TrimSpace(city) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "City is required")
	}

	state, err := h.controller.Trigger(c.UserContext(), city)
	if errors.Is(err, domain.ErrEmptyCity) {
		return fiber.NewError(fiber.StatusBadRequest, "City is required")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up weather")
	}

	return c.JSON(domain.StateResponse{
		Data:    state,
		Success: state.Status == domain.StatusLoaded,
		Message: state.Error,
	})
}
