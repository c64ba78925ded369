package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// SQLiteDayRecordRepo implements DayRecordRepo using a SQLite database.
// Each record is stored as a JSON document keyed by its date.
type SQLiteDayRecordRepo struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteDayRecordRepo creates a new SQLiteDayRecordRepo. A nil logger
// discards decode warnings.
func NewSQLiteDayRecordRepo(db *sql.DB, logger *slog.Logger) *SQLiteDayRecordRepo {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteDayRecordRepo{db: db, logger: logger}
}

func (r *SQLiteDayRecordRepo) LoadAll(ctx context.Context) (map[string]*domain.DayRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, record FROM day_records`)
	if err != nil {
		return nil, fmt.Errorf("loading day records: %w", err)
	}
	defer rows.Close()

	records := make(map[string]*domain.DayRecord)
	for rows.Next() {
		var date, raw string
		if err := rows.Scan(&date, &raw); err != nil {
			return nil, fmt.Errorf("scanning day record: %w", err)
		}
		var rec domain.DayRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			// Corrupt rows are skipped so one bad record never blocks startup.
			r.logger.Warn("skipping corrupt day record", "date", date, "error", err)
			continue
		}
		rec.Date = date
		records[date] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day records: %w", err)
	}
	return records, nil
}

func (r *SQLiteDayRecordRepo) SaveAll(ctx context.Context, records map[string]*domain.DayRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_records`); err != nil {
		return fmt.Errorf("clearing day records: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for date, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding day record %s: %w", date, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO day_records (date, record, updated_at) VALUES (?, ?, ?)`,
			date, string(raw), now,
		); err != nil {
			return fmt.Errorf("inserting day record %s: %w", date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing day records: %w", err)
	}
	return nil
}
