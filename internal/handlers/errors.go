// This file handles turning handler errors into HTTP responses.
//
// Handlers in this package never write their own error bodies; they return the
// error and let fiber route it here. That keeps one place responsible for deciding
// what a client is allowed to see when something goes wrong.
package handlers

import (
	// errors.As unwraps pkg/errors chains as well as fmt.Errorf %w chains
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/trentd187/hello-visits/internal/middleware"
)

// ErrorHandler is the app-wide fiber.ErrorHandler.
// Errors fiber raises itself (unknown route, wrong method) keep their status code.
// Anything else comes from the visit store: it is logged with the request ID and the
// client gets a bare 500, never the underlying database message.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// --- Step 1: Framework errors pass through with their own status ---
		// fiber.ErrNotFound, fiber.ErrMethodNotAllowed and friends are safe to show.
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).SendString(fe.Message)
		}

		// --- Step 2: Log the real cause ---
		// The request ID ties this line to the access-log line for the same request.
		log.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFrom(c),
			"path":       c.Path(),
		}).WithError(err).Error("request failed")

		// --- Step 3: Answer with a generic 500 ---
		return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
	}
}
