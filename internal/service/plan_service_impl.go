package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/daybreak/internal/clock"
	"github.com/alexanderramin/daybreak/internal/contract"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/intelligence"
	"github.com/alexanderramin/daybreak/internal/scheduler"
	"github.com/alexanderramin/daybreak/internal/store"
)

type planService struct {
	store    *store.DayStore
	gateway  intelligence.PlanService
	clk      clock.Clock
	observer UseCaseObserver

	mu         sync.Mutex
	generating bool
}

// NewPlanService wires day planning on top of the store and the model
// gateway. A nil gateway disables generation and replanning; undo still
// works.
func NewPlanService(st *store.DayStore, gateway intelligence.PlanService, clk clock.Clock, observers ...UseCaseObserver) PlanService {
	return &planService{
		store:    st,
		gateway:  gateway,
		clk:      clk,
		observer: useCaseObserverOrNoop(observers),
	}
}

// beginGeneration claims the single generation slot. A second plan or
// replan while one is running would race on the same day record.
func (s *planService) beginGeneration() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return &contract.ReplanError{
			Code:    contract.ReplanErrInFlight,
			Message: "a plan is already being generated, wait for it to finish",
		}
	}
	s.generating = true
	return nil
}

func (s *planService) endGeneration() {
	s.mu.Lock()
	s.generating = false
	s.mu.Unlock()
}

func (s *planService) Generate(ctx context.Context, req contract.GenerateRequest) (resp *contract.ReplanResponse, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"date": req.Date},
		})
	}()

	if req.Date == "" {
		req.Date = s.clk.Today()
	}
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if s.gateway == nil {
		return nil, &contract.ReplanError{
			Code:    contract.ReplanErrDisabled,
			Message: "plan generation is disabled",
		}
	}
	if err := s.beginGeneration(); err != nil {
		return nil, err
	}
	defer s.endGeneration()

	windowStart := req.WindowStart
	if windowStart == "" {
		windowStart = "06:00"
	}
	windowEnd := req.WindowEnd
	if windowEnd == "" {
		windowEnd = "23:59"
	}

	rec := s.store.Get(req.Date)
	snapshot := rec.Snapshot()

	result, genErr := s.gateway.Generate(ctx, intelligence.PlanRequest{
		Tasks:       rec.Tasks,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Context:     req.Context,
	})
	if genErr != nil {
		return s.degrade(ctx, req.Date, "Plan generation failed, your day was left unchanged. Try again in a moment.")
	}

	schedule := scheduler.LinkTasks(result.Schedule, rec.Tasks)
	if schedule == nil {
		schedule = []domain.TimeBlock{}
	}

	updated := s.store.Apply(ctx, req.Date, store.Patch{
		Schedule:    schedule,
		Explanation: store.String(result.Explanation),
		Previous:    snapshot,
	})
	return &contract.ReplanResponse{
		Record:      updated,
		NewBlocks:   len(schedule),
		Explanation: result.Explanation,
	}, nil
}

func (s *planService) Replan(ctx context.Context, req contract.ReplanRequest) (resp *contract.ReplanResponse, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "replan-day",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"date": req.Date},
		})
	}()

	if req.Date == "" {
		req.Date = s.clk.Today()
	}
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if req.Date != s.clk.Today() {
		return nil, &contract.ReplanError{
			Code:    contract.ReplanErrNotToday,
			Message: "replanning only applies to the current day: " + req.Date,
		}
	}
	if s.gateway == nil {
		return nil, &contract.ReplanError{
			Code:    contract.ReplanErrDisabled,
			Message: "plan generation is disabled",
		}
	}
	if err := s.beginGeneration(); err != nil {
		return nil, err
	}
	defer s.endGeneration()

	// One clock sample drives the whole merge. Everything before this
	// minute is history and survives verbatim.
	now := s.clk.NowTime()
	nowMin := domain.MinuteOf(now)

	rec := s.store.Get(req.Date)
	snapshot := rec.Snapshot()
	past := scheduler.Partition(rec.Schedule, nowMin)

	replanContext := req.Context
	if replanContext == "" {
		replanContext = "The user asked for the rest of the day to be replanned."
	}

	result, genErr := s.gateway.Replan(ctx, intelligence.PlanRequest{
		Tasks:       rec.Tasks,
		WindowStart: domain.FormatClock(nowMin),
		WindowEnd:   "23:59",
		Context:     replanContext,
	})
	if genErr != nil {
		return s.degrade(ctx, req.Date, "Replan failed, your current schedule was kept. Try again in a moment.")
	}

	tasks := result.Tasks
	if tasks == nil {
		tasks = []domain.Task{}
	}
	future := scheduler.LinkTasks(result.Schedule, tasks)
	merged := make([]domain.TimeBlock, 0, len(past)+len(future))
	merged = append(merged, past...)
	merged = append(merged, future...)

	updated := s.store.Apply(ctx, req.Date, store.Patch{
		Tasks:       tasks,
		Schedule:    merged,
		Explanation: store.String(result.Explanation),
		Previous:    snapshot,
	})
	return &contract.ReplanResponse{
		Record:      updated,
		PastBlocks:  len(past),
		NewBlocks:   len(future),
		Explanation: result.Explanation,
	}, nil
}

func (s *planService) Undo(ctx context.Context, date string) (*domain.DayRecord, error) {
	if date == "" {
		date = s.clk.Today()
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.store.Undo(ctx, date), nil
}

// degrade records a failure explanation without touching tasks, schedule
// or the undo snapshot. Gateway trouble must never cost the user data.
func (s *planService) degrade(ctx context.Context, date, message string) (*contract.ReplanResponse, error) {
	updated := s.store.Apply(ctx, date, store.Patch{
		Explanation: store.String(message),
	})
	return &contract.ReplanResponse{
		Record:      updated,
		Degraded:    true,
		Explanation: message,
	}, nil
}
