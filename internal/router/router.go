// Package router assembles the fiber app: global middleware plus every route.
// Keeping this out of main lets tests build the exact app the server runs.
package router

import (
	"context"

	"github.com/gofiber/fiber/v2"
	// cors lets browser front-ends on other origins call the greeting endpoints.
	"github.com/gofiber/fiber/v2/middleware/cors"
	// recover turns a handler panic into a 500 instead of crashing the process.
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/trentd187/hello-visits/internal/handlers"
	"github.com/trentd187/hello-visits/internal/metrics"
	"github.com/trentd187/hello-visits/internal/middleware"
	"github.com/trentd187/hello-visits/internal/visits"
)

// Deps is everything the routes need. Store is normally a *visits.Store.
type Deps struct {
	Store interface {
		handlers.VisitRecorder
		handlers.LeaderboardReader
	}
	Metrics *metrics.Metrics
	Log     logrus.FieldLogger
	Ping    func(ctx context.Context) error
}

// New builds the app.
//
//	GET       /health     liveness check
//	GET       /ready      readiness check (pings the database)
//	GET       /metrics    Prometheus metrics
//	GET       /v1/top10   leaderboard
//	GET, POST /v1/hello   greet and count, status from the returned count
//	GET, POST /v2/hello   greet and count, status computed by the database
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "hello-visits",
		ErrorHandler:          handlers.ErrorHandler(d.Log),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(d.Log, d.Metrics))
	app.Use(cors.New())

	app.Get("/health", handlers.HealthCheck)
	app.Get("/ready", handlers.Ready(d.Ping))
	app.Get("/metrics", d.Metrics.Handler())

	v1 := app.Group("/v1")
	v1.Get("/top10", handlers.Top10(d.Store, d.Metrics))
	hello := handlers.Hello(d.Store, d.Metrics)
	v1.Get("/hello", hello)
	v1.Post("/hello", hello)

	v2 := app.Group("/v2")
	helloV2 := handlers.HelloV2(d.Store, d.Metrics)
	v2.Get("/hello", helloV2)
	v2.Post("/hello", helloV2)

	return app
}

// compile-time check that the real store satisfies Deps.Store.
var _ interface {
	handlers.VisitRecorder
	handlers.LeaderboardReader
} = (*visits.Store)(nil)
