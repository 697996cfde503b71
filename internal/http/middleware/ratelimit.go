package middleware

import (
	"github.com/gofiber/fiber/v2"

	"studyaid/internal/ratelimit"
)

// RateLimit rejects requests over quota with 429. Callers are keyed by client IP.
// A nil limiter lets everything through.
func RateLimit(limiter ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}
		if !limiter.Allow(c.UserContext(), c.IP()) {
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		return c.Next()
	}
}
