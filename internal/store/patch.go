package store

import "github.com/alexanderramin/daybreak/internal/domain"

// Patch is a partial update merged into a day's record. Nil fields are left
// unchanged; a non-nil empty slice replaces with empty. Distractions are
// append-only. Previous and ClearPrevious manage the single undo snapshot
// slot: a replan sets Previous, an undo sets ClearPrevious.
type Patch struct {
	Tasks         []domain.Task
	Schedule      []domain.TimeBlock
	Explanation   *string
	Distractions  []string
	Previous      *domain.DaySnapshot
	ClearPrevious bool
}

// String returns a pointer to s, for Explanation fields.
func String(s string) *string {
	return &s
}

// apply merges the patch into a cloned record.
func (p Patch) apply(rec *domain.DayRecord) {
	if p.Tasks != nil {
		rec.Tasks = append([]domain.Task(nil), p.Tasks...)
	}
	if p.Schedule != nil {
		rec.Schedule = append([]domain.TimeBlock(nil), p.Schedule...)
	}
	if p.Explanation != nil {
		rec.Explanation = *p.Explanation
	}
	rec.Distractions = append(rec.Distractions, p.Distractions...)
	if p.Previous != nil {
		rec.Previous = p.Previous
	}
	if p.ClearPrevious {
		rec.Previous = nil
	}
}
