package service

import (
	"context"

	"github.com/alexanderramin/daybreak/internal/clock"
	"github.com/alexanderramin/daybreak/internal/contract"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/scheduler"
	"github.com/alexanderramin/daybreak/internal/store"
)

type scheduleService struct {
	store *store.DayStore
	clk   clock.Clock
}

func NewScheduleService(st *store.DayStore, clk clock.Clock) ScheduleService {
	return &scheduleService{store: st, clk: clk}
}

func (s *scheduleService) ToggleTask(ctx context.Context, req contract.ToggleTaskRequest) (*contract.ToggleTaskResponse, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}

	// The wall clock is read once so the decision of which block holds
	// the current minute cannot shift mid-update.
	isToday := req.Date == s.clk.Today()
	nowMin := domain.MinuteOf(s.clk.NowTime())

	rec := s.store.Get(req.Date)
	result := scheduler.ToggleCompletion(rec, req.TaskID, nowMin, isToday)

	// An unknown id still runs the (identity) update, so a miss and a hit
	// leave the store in the same written state.
	updated := s.store.Apply(ctx, req.Date, store.Patch{
		Tasks:    result.Tasks,
		Schedule: result.Schedule,
	})
	return &contract.ToggleTaskResponse{Record: updated, Found: result.Found}, nil
}
