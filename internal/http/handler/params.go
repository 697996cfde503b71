package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID reads the positive integer :id route parameter.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseBody decodes the JSON body into v, answering 400 INVALID_BODY on failure.
// A false return means the response has already been written.
func parseBody(c *fiber.Ctx, v any) (bool, error) {
	if err := c.BodyParser(v); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	return true, nil
}
