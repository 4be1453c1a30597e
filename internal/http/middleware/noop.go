package middleware

import "github.com/gofiber/fiber/v2"

// Noop passes the request straight through to the next handler. It keeps
// a stable slot in the middleware chain for handlers wired conditionally.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
