package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*DayStore, *repository.SQLiteDayRecordRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDayRecordRepo(database, nil)
	return NewDayStore(context.Background(), repo, nil), repo
}

func TestDayStore_GetUnknownDateIsIdempotentDefault(t *testing.T) {
	s, _ := newStore(t)

	first := s.Get("2025-03-01")
	second := s.Get("2025-03-01")

	assert.Equal(t, first, second)
	assert.Empty(t, first.Tasks)
	assert.Empty(t, first.Schedule)
	assert.Nil(t, first.Previous)
	assert.Empty(t, s.Dates(), "reads must not add keys to the mapping")
}

func TestDayStore_GetReturnsACopy(t *testing.T) {
	s, _ := newStore(t)
	s.Apply(context.Background(), "2025-03-01", Patch{
		Tasks: []domain.Task{testutil.NewTestTask("Read")},
	})

	got := s.Get("2025-03-01")
	got.Tasks[0].Title = "Mutated"

	assert.Equal(t, "Read", s.Get("2025-03-01").Tasks[0].Title)
}

func TestDayStore_ApplyMergesAndPreservesOtherFields(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	s.Apply(ctx, "2025-03-01", Patch{
		Tasks:       []domain.Task{testutil.NewTestTask("Read")},
		Explanation: String("initial"),
	})
	updated := s.Apply(ctx, "2025-03-01", Patch{
		Schedule: []domain.TimeBlock{testutil.NewTestBlock("09:00", "10:00")},
	})

	assert.Len(t, updated.Tasks, 1, "tasks preserved across a schedule-only patch")
	assert.Len(t, updated.Schedule, 1)
	assert.Equal(t, "initial", updated.Explanation)
}

func TestDayStore_ApplyEmptySliceReplaces(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	s.Apply(ctx, "2025-03-01", Patch{
		Tasks: []domain.Task{testutil.NewTestTask("Read")},
	})
	updated := s.Apply(ctx, "2025-03-01", Patch{Tasks: []domain.Task{}})

	assert.Empty(t, updated.Tasks)
}

func TestDayStore_DistractionsAreAppendOnly(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	s.Apply(ctx, "2025-03-01", Patch{Distractions: []string{"phone"}})
	updated := s.Apply(ctx, "2025-03-01", Patch{Distractions: []string{"doorbell"}})

	assert.Equal(t, []string{"phone", "doorbell"}, updated.Distractions)
}

func TestDayStore_ApplyPersistsFullMapping(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	s.Apply(ctx, "2025-03-01", Patch{
		Tasks: []domain.Task{testutil.NewTestTask("Read")},
	})

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Contains(t, loaded, "2025-03-01")
	assert.Len(t, loaded["2025-03-01"].Tasks, 1)
}

func TestDayStore_ReloadsPersistedState(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteDayRecordRepo(database, nil)
	ctx := context.Background()

	first := NewDayStore(ctx, repo, nil)
	first.Apply(ctx, "2025-03-01", Patch{Explanation: String("persisted")})

	second := NewDayStore(ctx, repo, nil)
	assert.Equal(t, "persisted", second.Get("2025-03-01").Explanation)
}

func TestDayStore_UndoRestoresExactlyOneLevel(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	original := s.Apply(ctx, "2025-03-01", Patch{
		Tasks:       []domain.Task{testutil.NewTestTask("Read")},
		Schedule:    []domain.TimeBlock{testutil.NewTestBlock("09:00", "10:00")},
		Explanation: String("before replan"),
	})

	// A destructive update snapshots first, replan-style.
	s.Apply(ctx, "2025-03-01", Patch{
		Tasks:       []domain.Task{testutil.NewTestTask("Regenerated")},
		Schedule:    []domain.TimeBlock{testutil.NewTestBlock("11:00", "12:00")},
		Explanation: String("after replan"),
		Previous:    original.Snapshot(),
	})

	restored := s.Undo(ctx, "2025-03-01")
	assert.Equal(t, original.Tasks, restored.Tasks)
	assert.Equal(t, original.Schedule, restored.Schedule)
	assert.Equal(t, "before replan", restored.Explanation)
	assert.Nil(t, restored.Previous)

	again := s.Undo(ctx, "2025-03-01")
	assert.Equal(t, restored, again, "second undo with no snapshot is a no-op")
}

func TestDayStore_UndoUnknownDateIsNoOp(t *testing.T) {
	s, _ := newStore(t)
	got := s.Undo(context.Background(), "2030-01-01")
	assert.Empty(t, got.Tasks)
	assert.Empty(t, s.Dates())
}

func TestDayStore_UndoPreservesDistractions(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	original := s.Apply(ctx, "2025-03-01", Patch{Distractions: []string{"phone"}})
	s.Apply(ctx, "2025-03-01", Patch{
		Tasks:        []domain.Task{testutil.NewTestTask("New")},
		Previous:     original.Snapshot(),
		Distractions: []string{"doorbell"},
	})

	restored := s.Undo(ctx, "2025-03-01")
	assert.Equal(t, []string{"phone", "doorbell"}, restored.Distractions,
		"undo restores tasks/schedule/explanation only")
}

type failingRepo struct{ loadErr, saveErr error }

func (f failingRepo) LoadAll(context.Context) (map[string]*domain.DayRecord, error) {
	return nil, f.loadErr
}

func (f failingRepo) SaveAll(context.Context, map[string]*domain.DayRecord) error {
	return f.saveErr
}

func TestDayStore_LoadFailureStartsEmpty(t *testing.T) {
	s := NewDayStore(context.Background(), failingRepo{loadErr: errors.New("corrupt")}, nil)
	assert.Empty(t, s.Dates())
	assert.Empty(t, s.Get("2025-03-01").Tasks)
}

func TestDayStore_SaveFailureIsNotFatal(t *testing.T) {
	s := NewDayStore(context.Background(), failingRepo{saveErr: errors.New("disk full")}, nil)
	updated := s.Apply(context.Background(), "2025-03-01", Patch{
		Tasks: []domain.Task{testutil.NewTestTask("Read")},
	})
	assert.Len(t, updated.Tasks, 1)
	assert.Len(t, s.Get("2025-03-01").Tasks, 1, "in-memory mapping keeps serving")
}
