package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the full schema. Each statement is idempotent so the
// whole list can be re-run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS day_records (
		date TEXT PRIMARY KEY,
		record TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
