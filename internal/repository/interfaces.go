package repository

import (
	"context"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// DayRecordRepo persists the full date→DayRecord mapping. Saves are
// best-effort from the caller's point of view: the day store logs failures
// and keeps serving the in-memory mapping.
type DayRecordRepo interface {
	// LoadAll returns every persisted record keyed by date. Rows that fail
	// to decode are skipped, never fatal.
	LoadAll(ctx context.Context) (map[string]*domain.DayRecord, error)

	// SaveAll persists the full mapping, replacing whatever was stored.
	SaveAll(ctx context.Context, records map[string]*domain.DayRecord) error
}
