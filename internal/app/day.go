package app

import (
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/scheduler"
)

// DayView is a day's record plus the derived display aggregates.
type DayView struct {
	Record  *domain.DayRecord
	Sorted  []domain.TimeBlock // schedule ordered by start time
	Balance []scheduler.DomainMinutes
	IsToday bool
}

// AddTaskRequest carries a manually entered task. Entry-time validation
// (fixed time present when fixed, at most one non-negotiable per day) happens
// before this request is built; the core carries whatever it is given.
type AddTaskRequest struct {
	Date string
	Task domain.Task
}

// ToggleTaskRequest marks a task done or not done for a date.
type ToggleTaskRequest struct {
	Date   string
	TaskID string
}

// ToggleTaskResponse reports the reconciled record. Found is false when the
// task id matched nothing; the (identity) update still ran.
type ToggleTaskResponse struct {
	Record *domain.DayRecord
	Found  bool
}

type DayErrorCode string

const (
	DayErrInvalidDate DayErrorCode = "INVALID_DATE"
	DayErrInvalidTask DayErrorCode = "INVALID_TASK"
)

type DayError struct {
	Code    DayErrorCode
	Message string
}

func (e *DayError) Error() string {
	return string(e.Code) + ": " + e.Message
}
