package contract

import "github.com/alexanderramin/daybreak/internal/app"

type GenerateRequest = app.GenerateRequest

func NewGenerateRequest(date string) GenerateRequest {
	return app.NewGenerateRequest(date)
}

type ReplanRequest = app.ReplanRequest

type ReplanResponse = app.ReplanResponse

type ReplanErrorCode = app.ReplanErrorCode

const (
	ReplanErrNotToday ReplanErrorCode = app.ReplanErrNotToday
	ReplanErrInFlight ReplanErrorCode = app.ReplanErrInFlight
	ReplanErrDisabled ReplanErrorCode = app.ReplanErrDisabled
	ReplanErrInternal ReplanErrorCode = app.ReplanErrInternal
)

type ReplanError = app.ReplanError
