package contract

import "github.com/alexanderramin/daybreak/internal/app"

type DayView = app.DayView

type AddTaskRequest = app.AddTaskRequest

type ToggleTaskRequest = app.ToggleTaskRequest

type ToggleTaskResponse = app.ToggleTaskResponse

type DayErrorCode = app.DayErrorCode

const (
	DayErrInvalidDate DayErrorCode = app.DayErrInvalidDate
	DayErrInvalidTask DayErrorCode = app.DayErrInvalidTask
)

type DayError = app.DayError
