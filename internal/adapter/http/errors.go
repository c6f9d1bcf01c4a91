package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/iggarsaudev/career-hub/internal/common"
)

// errorStatus maps service errors onto HTTP statuses and client messages.
// Unknown errors are 500 with a generic message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrNotPublished):
		return fiber.StatusNotFound, "No CV published yet"
	case errors.Is(err, common.ErrMissingProfile):
		return fiber.StatusConflict, common.ErrMissingProfile.Error()
	case errors.Is(err, common.ErrDataUnavailable):
		return fiber.StatusServiceUnavailable, common.ErrDataUnavailable.Error()
	case errors.Is(err, common.ErrInvalidDocument):
		return fiber.StatusBadRequest, common.ErrInvalidDocument.Error()
	case errors.Is(err, common.ErrPublishFailure):
		return fiber.StatusBadGateway, common.ErrPublishFailure.Error()
	case errors.Is(err, common.ErrRenderFailure):
		return fiber.StatusInternalServerError, common.ErrRenderFailure.Error()
	case errors.Is(err, common.ErrInvalidCredentials), errors.Is(err, common.ErrInvalidToken):
		return fiber.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "request timed out"
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}

func (h *Handler) fail(c *fiber.Ctx, route string, err error) error {
	status, msg := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		h.log.Error(c.UserContext(), "request failed", "route", route, "status", status, "request_id", requestID(c), "error", err)
	} else {
		h.log.Warn(c.UserContext(), "request rejected", "route", route, "status", status, "request_id", requestID(c), "error", err)
	}
	return Error(c, status, msg)
}
