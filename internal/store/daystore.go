// Package store owns the date→DayRecord mapping. All other components read
// and mutate day state only through Get and Apply; every successful update
// persists the full mapping through the injected repository.
package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
)

// DayStore holds every day's planning record, keyed by "YYYY-MM-DD".
type DayStore struct {
	mu      sync.Mutex
	records map[string]*domain.DayRecord
	repo    repository.DayRecordRepo
	logger  *slog.Logger
}

// NewDayStore creates a DayStore backed by repo, loading any previously
// persisted mapping. A load failure means start empty, never fatal.
func NewDayStore(ctx context.Context, repo repository.DayRecordRepo, logger *slog.Logger) *DayStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &DayStore{
		records: make(map[string]*domain.DayRecord),
		repo:    repo,
		logger:  logger,
	}
	if repo != nil {
		loaded, err := repo.LoadAll(ctx)
		if err != nil {
			logger.Warn("loading persisted day records failed, starting empty", "error", err)
		} else if loaded != nil {
			s.records = loaded
		}
	}
	return s
}

// Get returns a copy of the record for date. Unknown dates yield an empty
// record that is NOT added to the mapping; reading never mutates the store.
func (s *DayStore) Get(date string) *domain.DayRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[date]; ok {
		return rec.Clone()
	}
	return domain.NewDayRecord(date)
}

// Apply merges a partial update into the record for date, creating it first
// if absent, then persists the full mapping. The merged record is returned.
// Persistence is best-effort: a save failure is logged and the in-memory
// mapping keeps serving.
func (s *DayStore) Apply(ctx context.Context, date string, patch Patch) *domain.DayRecord {
	s.mu.Lock()
	rec, ok := s.records[date]
	if !ok {
		rec = domain.NewDayRecord(date)
	}
	updated := rec.Clone()
	patch.apply(updated)
	s.records[date] = updated
	snapshot := s.cloneAllLocked()
	result := updated.Clone()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return result
}

// Undo restores {tasks, schedule, explanation} from the record's snapshot
// and clears the snapshot slot. Without a snapshot it is a benign no-op that
// returns the current record unchanged.
func (s *DayStore) Undo(ctx context.Context, date string) *domain.DayRecord {
	s.mu.Lock()
	rec, ok := s.records[date]
	if !ok || rec.Previous == nil {
		var result *domain.DayRecord
		if ok {
			result = rec.Clone()
		} else {
			result = domain.NewDayRecord(date)
		}
		s.mu.Unlock()
		return result
	}

	restored := rec.Clone()
	restored.Tasks = append([]domain.Task(nil), rec.Previous.Tasks...)
	restored.Schedule = append([]domain.TimeBlock(nil), rec.Previous.Schedule...)
	restored.Explanation = rec.Previous.Explanation
	restored.Previous = nil
	s.records[date] = restored
	snapshot := s.cloneAllLocked()
	result := restored.Clone()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return result
}

// Dates returns every stored date in ascending order.
func (s *DayStore) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	dates := make([]string, 0, len(s.records))
	for d := range s.records {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

func (s *DayStore) cloneAllLocked() map[string]*domain.DayRecord {
	all := make(map[string]*domain.DayRecord, len(s.records))
	for d, r := range s.records {
		all[d] = r.Clone()
	}
	return all
}

func (s *DayStore) persist(ctx context.Context, all map[string]*domain.DayRecord) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveAll(ctx, all); err != nil {
		s.logger.Warn("persisting day records failed", "error", err)
	}
}
