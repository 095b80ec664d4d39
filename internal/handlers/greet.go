// This file handles the greeting routes, /v1/hello and /v2/hello.
//
// Both greet the visitor named in the ?name= query param and count the visit.
// They differ only in how the first-time/returning decision is made:
//   - v1 gets the post-update visit count back from the store and compares it to 1
//   - v2 lets the database compute the status inside the upsert itself
//
// An empty or missing name is an anonymous visit: nothing is written and the
// visitor is greeted as first-time "unknown user".
package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/hello-visits/internal/greeting"
	"github.com/trentd187/hello-visits/internal/metrics"
	"github.com/trentd187/hello-visits/internal/models"
)

// VisitRecorder is the part of visits.Store the greeting handlers need.
type VisitRecorder interface {
	RecordVisit(ctx context.Context, name string) (int64, error)
	RecordVisitAndClassify(ctx context.Context, name string) (models.VisitorStatus, error)
}

// Hello returns a handler for /v1/hello (count-then-classify).
func Hello(recorder VisitRecorder, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")

		status := models.VisitorStatusFirstTime
		if name != "" {
			count, err := recorder.RecordVisit(c.UserContext(), name)
			if err != nil {
				m.ObserveStorageError("record_visit")
				return err
			}
			status = models.StatusFromCount(count)
		}

		m.ObserveGreeting("v1", string(status))
		return c.SendString(greeting.Greet(name, status))
	}
}

// HelloV2 returns a handler for /v2/hello (classify-in-query).
func HelloV2(recorder VisitRecorder, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")

		status := models.VisitorStatusFirstTime
		if name != "" {
			var err error
			status, err = recorder.RecordVisitAndClassify(c.UserContext(), name)
			if err != nil {
				m.ObserveStorageError("record_visit_and_classify")
				return err
			}
		}

		m.ObserveGreeting("v2", string(status))
		return c.SendString(greeting.Greet(name, status))
	}
}
