// This file handles the /v1/top10 route, the leaderboard of the most frequent visitors.
//
// The handler is read-only. When a replica is configured the store sends this
// query there (see visits.Store.TopVisitors), so the leaderboard may lag the
// greeting routes by the replication delay.
package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/hello-visits/internal/metrics"
	"github.com/trentd187/hello-visits/internal/models"
	"github.com/trentd187/hello-visits/internal/visits"
)

// LeaderboardReader is the part of visits.Store the leaderboard handler needs.
type LeaderboardReader interface {
	TopVisitors(ctx context.Context, limit int) ([]models.Visitor, error)
}

// Top10 returns a handler for GET /v1/top10.
// The body is one "<name> <count>" line per visitor, most frequent first,
// and empty when nobody has visited yet.
func Top10(reader LeaderboardReader, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// --- Step 1: Query the store ---
		// c.UserContext() is cancelled if the client goes away, which aborts the query.
		top, err := reader.TopVisitors(c.UserContext(), visits.DefaultLeaderboardSize)
		if err != nil {
			m.ObserveStorageError("top_visitors")
			return err // ErrorHandler logs it and answers 500
		}

		// --- Step 2: Render plain text ---
		// The store already returns rows in leaderboard order (count DESC, name ASC).
		var b strings.Builder
		for _, v := range top {
			b.WriteString(v.Name)
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(v.Count, 10))
			b.WriteByte('\n')
		}

		// SendString sets Content-Type to text/plain; an empty store gives an empty 200.
		return c.SendString(b.String())
	}
}
