package service

import (
	"context"

	"github.com/alexanderramin/daybreak/internal/intelligence"
	"github.com/alexanderramin/daybreak/internal/scheduler"
	"github.com/alexanderramin/daybreak/internal/store"
)

type debriefService struct {
	store    *store.DayStore
	debriefs intelligence.DebriefService
}

func NewDebriefService(st *store.DayStore, debriefs intelligence.DebriefService) DebriefService {
	return &debriefService{store: st, debriefs: debriefs}
}

func (s *debriefService) DebriefDay(ctx context.Context, date string) (string, error) {
	if err := validateDate(date); err != nil {
		return "", err
	}

	rec := s.store.Get(date)
	return s.debriefs.Debrief(ctx, intelligence.DebriefInput{
		Date:         date,
		Tasks:        rec.Tasks,
		Schedule:     rec.Schedule,
		Distractions: rec.Distractions,
		Balance:      scheduler.AggregateDomains(rec.Schedule),
	}), nil
}
