package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/alexanderramin/daybreak/internal/clock"
	"github.com/alexanderramin/daybreak/internal/contract"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/scheduler"
	"github.com/alexanderramin/daybreak/internal/store"
)

type dayService struct {
	store *store.DayStore
	clk   clock.Clock
}

func NewDayService(st *store.DayStore, clk clock.Clock) DayService {
	return &dayService{store: st, clk: clk}
}

func (s *dayService) GetDay(ctx context.Context, date string) (*contract.DayView, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	rec := s.store.Get(date)
	return &contract.DayView{
		Record:  rec,
		Sorted:  scheduler.SortByStart(rec.Schedule),
		Balance: scheduler.AggregateDomains(rec.Schedule),
		IsToday: date == s.clk.Today(),
	}, nil
}

func (s *dayService) AddTask(ctx context.Context, req contract.AddTaskRequest) (*domain.DayRecord, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	task := req.Task
	if err := normalizeTask(&task); err != nil {
		return nil, err
	}

	rec := s.store.Get(req.Date)
	updated := s.store.Apply(ctx, req.Date, store.Patch{
		Tasks: append(rec.Tasks, task),
	})
	return updated, nil
}

func (s *dayService) AddDistraction(ctx context.Context, date, text string) (*domain.DayRecord, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &contract.DayError{
			Code:    contract.DayErrInvalidTask,
			Message: "distraction text must not be empty",
		}
	}
	return s.store.Apply(ctx, date, store.Patch{Distractions: []string{text}}), nil
}

func (s *dayService) ImportDay(ctx context.Context, rec *domain.DayRecord) (*domain.DayRecord, error) {
	if err := validateDate(rec.Date); err != nil {
		return nil, err
	}

	current := s.store.Get(rec.Date)
	tasks := rec.Tasks
	if tasks == nil {
		tasks = []domain.Task{}
	}
	schedule := rec.Schedule
	if schedule == nil {
		schedule = []domain.TimeBlock{}
	}

	return s.store.Apply(ctx, rec.Date, store.Patch{
		Tasks:        tasks,
		Schedule:     schedule,
		Explanation:  store.String(rec.Explanation),
		Distractions: rec.Distractions,
		Previous:     current.Snapshot(),
	}), nil
}

// normalizeTask fills defaults and rejects tasks the planner cannot place.
func normalizeTask(task *domain.Task) error {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return &contract.DayError{
			Code:    contract.DayErrInvalidTask,
			Message: "task title must not be empty",
		}
	}
	if task.DurationMinutes <= 0 {
		return &contract.DayError{
			Code:    contract.DayErrInvalidTask,
			Message: "task duration must be a positive number of minutes",
		}
	}
	if task.IsFixed {
		if _, err := domain.ParseClock(task.FixedTime); err != nil {
			return &contract.DayError{
				Code:    contract.DayErrInvalidTask,
				Message: "fixed tasks need a valid HH:MM time: " + task.FixedTime,
			}
		}
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if !domain.ValidPriorities[string(task.Priority)] {
		task.Priority = domain.PriorityNormal
	}
	if !domain.ValidEnergyLevels[string(task.EnergyLevel)] {
		task.EnergyLevel = domain.EnergyMedium
	}
	if task.Domain != "" && !domain.ValidLifeDomains[string(task.Domain)] {
		task.Domain = ""
	}
	return nil
}
