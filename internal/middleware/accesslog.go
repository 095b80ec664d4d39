// This file handles per-request access logging and the request latency metric.
//
// Every request produces exactly one log line, whether it succeeded, hit an
// unknown route, or failed in the visit store.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/trentd187/hello-visits/internal/metrics"
)

// AccessLog writes one log line per request and records its latency in m.
// It must run after RequestID so the line carries the request ID.
//
// Errors returned further down the chain are handed to the app's ErrorHandler here,
// the same way fiber's own logger middleware does it, so the logged status is the
// status the client actually receives.
func AccessLog(log logrus.FieldLogger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// --- Step 1: Run the rest of the chain ---
		// The error is resolved into a response now rather than after this middleware
		// returns; otherwise the status read below would still be the default 200.
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		// --- Step 2: Record the latency histogram ---
		// c.Route().Path is the route pattern, which keeps label cardinality bounded.
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		m.ObserveRequest(c.Route().Path, c.Method(), status, elapsed)

		// --- Step 3: Write the log line ---
		entry := log.WithFields(logrus.Fields{
			"request_id": RequestIDFrom(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": elapsed.Milliseconds(),
			"ip":         c.IP(),
		})
		if status >= fiber.StatusInternalServerError {
			entry.Warn("request failed")
		} else {
			entry.Info("request")
		}

		// The error has already been turned into a response above.
		return nil
	}
}
