package service

import (
	"context"

	"github.com/alexanderramin/daybreak/internal/contract"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/intelligence"
)

type DayService interface {
	GetDay(ctx context.Context, date string) (*contract.DayView, error)
	AddTask(ctx context.Context, req contract.AddTaskRequest) (*domain.DayRecord, error)
	AddDistraction(ctx context.Context, date, text string) (*domain.DayRecord, error)

	// ImportDay replaces a day's contents with an imported record,
	// snapshotting the previous state for undo.
	ImportDay(ctx context.Context, rec *domain.DayRecord) (*domain.DayRecord, error)
}

type ScheduleService interface {
	ToggleTask(ctx context.Context, req contract.ToggleTaskRequest) (*contract.ToggleTaskResponse, error)
}

type PlanService interface {
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.ReplanResponse, error)
	Replan(ctx context.Context, req contract.ReplanRequest) (*contract.ReplanResponse, error)
	Undo(ctx context.Context, date string) (*domain.DayRecord, error)
}

type ChatService interface {
	// Turn advances the conversation by one exchange.
	Turn(ctx context.Context, conv []intelligence.ConversationTurn, userMessage string) (*intelligence.ChatResult, error)

	// ApplyPlan writes a confirmed chat plan onto today's record,
	// snapshotting the previous state for undo.
	ApplyPlan(ctx context.Context, plan *intelligence.PlanResult) (*domain.DayRecord, error)
}

type DebriefService interface {
	DebriefDay(ctx context.Context, date string) (string, error)
}
