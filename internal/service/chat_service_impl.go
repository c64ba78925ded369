package service

import (
	"context"

	"github.com/alexanderramin/daybreak/internal/clock"
	"github.com/alexanderramin/daybreak/internal/contract"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/intelligence"
	"github.com/alexanderramin/daybreak/internal/scheduler"
	"github.com/alexanderramin/daybreak/internal/store"
)

type chatService struct {
	store   *store.DayStore
	gateway intelligence.PlanService
	clk     clock.Clock
}

func NewChatService(st *store.DayStore, gateway intelligence.PlanService, clk clock.Clock) ChatService {
	return &chatService{store: st, gateway: gateway, clk: clk}
}

func (s *chatService) Turn(ctx context.Context, conv []intelligence.ConversationTurn, userMessage string) (*intelligence.ChatResult, error) {
	if s.gateway == nil {
		return nil, &contract.ReplanError{
			Code:    contract.ReplanErrDisabled,
			Message: "chat planning is disabled",
		}
	}
	return s.gateway.ChatToSchedule(ctx, conv, userMessage)
}

func (s *chatService) ApplyPlan(ctx context.Context, plan *intelligence.PlanResult) (*domain.DayRecord, error) {
	if plan == nil {
		return nil, &contract.ReplanError{
			Code:    contract.ReplanErrInternal,
			Message: "no plan to apply",
		}
	}

	date := s.clk.Today()
	rec := s.store.Get(date)
	snapshot := rec.Snapshot()

	tasks := plan.Tasks
	if tasks == nil {
		tasks = rec.Tasks
	}
	schedule := scheduler.LinkTasks(plan.Schedule, tasks)
	if schedule == nil {
		schedule = []domain.TimeBlock{}
	}

	return s.store.Apply(ctx, date, store.Patch{
		Tasks:       tasks,
		Schedule:    schedule,
		Explanation: store.String(plan.Explanation),
		Previous:    snapshot,
	}), nil
}
