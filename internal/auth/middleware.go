package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalSubject is the c.Locals key holding the authenticated admin.
const LocalSubject = "adminSubject"

// Middleware rejects requests without a valid Bearer token.
func Middleware(tokens *Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		token := header
		if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
		}
		subject, err := tokens.Parse(token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals(LocalSubject, subject)
		return c.Next()
	}
}
