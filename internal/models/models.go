// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to Go values.
//
// The data model is deliberately tiny: one row per visitor name holding how many
// times that name has been greeted. Everything else (first-time vs. returning
// visitor) is derived from that counter at the moment it is updated.
package models

import (
	"database/sql/driver"

	"github.com/pkg/errors"
)

// --- Enums ---
// Go doesn't have a built-in enum keyword, so we simulate them using a named string type
// plus constants. The string values match the labels of the Postgres enum "user_type"
// created in migrations/000001_create_users.up.sql.

// VisitorStatus says whether a visitor has been seen before.
// It is never stored as a column of its own; it is a view over Visitor.Count.
type VisitorStatus string

const (
	VisitorStatusFirstTime VisitorStatus = "first_time" // Count == 1 right after the visit was recorded
	VisitorStatusKnown     VisitorStatus = "known"      // Count > 1 right after the visit was recorded
)

// StatusFromCount classifies a post-update visit count.
// A count of 1 means this was the first recorded visit; anything higher means the
// name has been seen before. Counts below 1 cannot come out of the upsert, but they
// are treated as first-time rather than panicking.
func StatusFromCount(count int64) VisitorStatus {
	if count > 1 {
		return VisitorStatusKnown
	}
	return VisitorStatusFirstTime
}

// Scan implements sql.Scanner so GORM can read the enum label returned by
// the classify-in-query upsert straight into a VisitorStatus.
// Postgres (via pgx) hands enum values back as strings; SQLite may return []byte.
func (s *VisitorStatus) Scan(value interface{}) error {
	var label string
	switch v := value.(type) {
	case string:
		label = v
	case []byte:
		label = string(v)
	default:
		return errors.Errorf("models: cannot scan %T into VisitorStatus", value)
	}

	switch VisitorStatus(label) {
	case VisitorStatusFirstTime, VisitorStatusKnown:
		*s = VisitorStatus(label)
		return nil
	default:
		return errors.Errorf("models: unknown visitor status %q", label)
	}
}

// Value implements driver.Valuer.
func (s VisitorStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Models ---

// Visitor is one row of the "users" table: a visitor name and how many times it was greeted.
// Rows are created by the first visit (Count = 1) and only ever incremented afterwards;
// nothing in this service deletes them.
//
// The tags mirror migrations/000001_create_users.up.sql so a SQLite database built by
// AutoMigrate has the same CHECK constraint and leaderboard index as PostgreSQL.
type Visitor struct {
	Name  string `gorm:"primaryKey;type:text;index:idx_users_count_name,priority:2"`                    // The name submitted in the ?name= query param; unique
	Count int64  `gorm:"not null;check:chk_users_count,count >= 1;index:idx_users_count_name,priority:1,sort:desc"` // Number of recorded visits for Name; always >= 1
}

// TableName pins the table name to "users" (GORM would otherwise pluralize to "visitors").
func (Visitor) TableName() string {
	return "users"
}
