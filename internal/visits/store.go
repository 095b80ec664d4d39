// Package visits records visits against the users table and reads the leaderboard back.
//
// Both visit recorders run the same upsert: insert the name with count 1, or bump the
// existing row's count by one. The database's ON CONFLICT handling serializes writers
// per name, so concurrent visits never lose an increment and every caller sees the count
// produced by its own write.
package visits

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/trentd187/hello-visits/internal/models"
)

// DefaultLeaderboardSize is how many visitors the leaderboard lists.
const DefaultLeaderboardSize = 10

// ErrEmptyName is returned when a recorder is called without a name.
// Handlers never do this: an empty name is an anonymous visit and is not stored.
var ErrEmptyName = errors.New("visits: name must not be empty")

// Store runs the visit queries. It holds no state besides the database handle,
// so one Store is shared by every request.
type Store struct {
	db *gorm.DB
}

// NewStore wraps db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// RecordVisit upserts name inside an explicit transaction and returns the visit count
// after this visit. The transaction commits only once the upsert has succeeded; any
// error rolls it back, so a failed visit leaves no trace.
//
// Callers turn the count into a status with models.StatusFromCount.
func (s *Store) RecordVisit(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, ErrEmptyName
	}

	visitor := models.Visitor{Name: name, Count: 1}

	// db.Transaction commits when the callback returns nil and rolls back otherwise.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// INSERT INTO users (name, count) VALUES (?, 1)
		// ON CONFLICT (name) DO UPDATE SET count = users.count + 1
		// RETURNING count
		return tx.Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "name"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"count": gorm.Expr("users.count + 1"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "count"}}},
		).Create(&visitor).Error
	})
	if err != nil {
		return 0, errors.Wrapf(err, "visits: record visit for %q", name)
	}

	return visitor.Count, nil
}

// classifiedVisit receives the single column returned by the classify-in-query upsert.
type classifiedVisit struct {
	Type models.VisitorStatus
}

// RecordVisitAndClassify runs the same upsert as RecordVisit but lets the database decide
// the visitor status from the post-update count in the RETURNING clause. It is a single
// statement, so no explicit transaction is opened; it always goes to the primary.
func (s *Store) RecordVisitAndClassify(ctx context.Context, name string) (models.VisitorStatus, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	var row classifiedVisit
	result := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Raw(classifySQL(s.db.Dialector.Name()), name).
		Scan(&row)
	if result.Error != nil {
		return "", errors.Wrapf(result.Error, "visits: record and classify visit for %q", name)
	}
	if result.RowsAffected == 0 {
		return "", errors.Errorf("visits: upsert for %q returned no row", name)
	}

	return row.Type, nil
}

// classifySQL builds the classify-in-query upsert. On PostgreSQL the labels are cast to
// the user_type enum; SQLite has no enum types and returns them as text.
func classifySQL(dialect string) string {
	known, firstTime := "'known'", "'first_time'"
	if dialect == "postgres" {
		known += "::user_type"
		firstTime += "::user_type"
	}

	return `INSERT INTO users (name, count) VALUES (?, 1)
ON CONFLICT (name) DO UPDATE SET count = users.count + 1
RETURNING CASE WHEN count > 1 THEN ` + known + ` ELSE ` + firstTime + ` END AS type`
}

// TopVisitors returns up to limit visitors ordered by count (highest first), ties broken
// by name in ascending order. A non-positive limit means DefaultLeaderboardSize.
// The query is read-only and is served by a replica when one is registered.
func (s *Store) TopVisitors(ctx context.Context, limit int) ([]models.Visitor, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	visitors := make([]models.Visitor, 0, limit)
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("count DESC").
		Order("name ASC").
		Limit(limit).
		Find(&visitors).Error
	if err != nil {
		return nil, errors.Wrap(err, "visits: read leaderboard")
	}

	return visitors, nil
}
