package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// EnsureClientID identifies the browser tab talking to us. The id comes
// from the X-Client-ID header or the clientId query parameter; when both are
// missing a fresh one is issued and echoed back in the response header.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
			log.Debugf("issued client id %s for %s", clientID, c.Path())
		}
		c.Set("X-Client-ID", clientID)

		// Store in context for this request
		c.Locals("clientID", clientID)
		return c.Next()
	}
}
