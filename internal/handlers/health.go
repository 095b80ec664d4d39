// Package handlers contains the HTTP route handler functions for the hello-visits API.
// Each handler corresponds to one API endpoint and is responsible for reading the
// request, calling the visit store, and writing a response.
package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck handles GET /health.
// It returns a simple JSON response indicating the server is alive and reachable.
// No database queries happen here: a database outage should make the instance
// unready (see Ready), not get it restarted by a liveness check.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// readyTimeout bounds the readiness ping so a hung database fails the check quickly.
const readyTimeout = 2 * time.Second

// Ready returns a handler for GET /ready.
// It answers 200 when ping succeeds and 503 otherwise, so load balancers stop
// routing traffic to an instance that cannot reach its database.
func Ready(ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	}
}
