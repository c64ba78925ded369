package app

import (
	"context"

	"github.com/alexanderramin/daybreak/internal/domain"
)

type DayUseCase interface {
	GetDay(ctx context.Context, date string) (*DayView, error)
	AddTask(ctx context.Context, req AddTaskRequest) (*domain.DayRecord, error)
	AddDistraction(ctx context.Context, date, text string) (*domain.DayRecord, error)
	ImportDay(ctx context.Context, rec *domain.DayRecord) (*domain.DayRecord, error)
}

type ToggleTaskUseCase interface {
	ToggleTask(ctx context.Context, req ToggleTaskRequest) (*ToggleTaskResponse, error)
}

type PlanUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*ReplanResponse, error)
	Replan(ctx context.Context, req ReplanRequest) (*ReplanResponse, error)
	Undo(ctx context.Context, date string) (*domain.DayRecord, error)
}
