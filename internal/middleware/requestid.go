// Package middleware contains HTTP middleware functions for the hello-visits API.
// Middleware sits between the HTTP server and route handlers; it runs on every
// request that passes through it, making it the right place for cross-cutting
// concerns like request tracing and access logging.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// localRequestID is the c.Locals key holding the ID for downstream handlers.
const localRequestID = "requestID"

// maxRequestIDLen bounds IDs accepted from clients so they cannot bloat our logs.
const maxRequestIDLen = 128

// RequestID tags every request with an ID. An ID sent by the client (or a proxy in front
// of us) in X-Request-ID is reused; otherwise a random UUID is generated. The ID is echoed
// in the response header and stored in c.Locals for the access log and error handler.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Locals(localRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// RequestIDFrom returns the ID stored by RequestID, or "" when the middleware did not run.
func RequestIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}
