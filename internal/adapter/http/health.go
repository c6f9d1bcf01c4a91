package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Readiness interface {
	Ready(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc Readiness }

func NewHealthHandler(svc Readiness) *HealthHandler { return &HealthHandler{svc: svc} }

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return JSON(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return JSON(c, fiber.StatusServiceUnavailable, fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return JSON(c, fiber.StatusOK, fiber.Map{"status": "ready"})
}
