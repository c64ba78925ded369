package app

import "github.com/alexanderramin/daybreak/internal/domain"

// GenerateRequest asks for a fresh schedule for a whole window. Destructive:
// the previous {tasks, schedule, explanation} are snapshotted for undo.
type GenerateRequest struct {
	Date        string
	WindowStart string // defaults to "06:00"
	WindowEnd   string // defaults to "23:59"
	Context     string
}

func NewGenerateRequest(date string) GenerateRequest {
	return GenerateRequest{
		Date:        date,
		WindowStart: "06:00",
		WindowEnd:   "23:59",
	}
}

// ReplanRequest asks for the remainder of today to be regenerated. Only
// valid for the current calendar date.
type ReplanRequest struct {
	Date    string
	Context string
}

// ReplanResponse reports the merged record. Degraded is true when the
// gateway failed and the record was preserved with a failure explanation.
type ReplanResponse struct {
	Record      *domain.DayRecord
	PastBlocks  int
	NewBlocks   int
	Degraded    bool
	Explanation string
}

type ReplanErrorCode string

const (
	ReplanErrNotToday ReplanErrorCode = "NOT_TODAY"
	ReplanErrInFlight ReplanErrorCode = "GENERATION_IN_FLIGHT"
	ReplanErrDisabled ReplanErrorCode = "LLM_DISABLED"
	ReplanErrInternal ReplanErrorCode = "INTERNAL_ERROR"
)

type ReplanError struct {
	Code    ReplanErrorCode
	Message string
}

func (e *ReplanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
