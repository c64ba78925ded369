package scheduler

import (
	"strings"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/google/uuid"
)

// DoneSuffix marks a block whose task was completed while it was in progress.
const DoneSuffix = " (Done)"

// BufferLabel names the break block inserted when a task finishes early.
const BufferLabel = "Efficiency Bonus"

// ToggleResult holds the reconciled task list and schedule after a completion
// toggle. Found reports whether the task id matched anything; a miss is a
// benign no-op, not an error.
type ToggleResult struct {
	Tasks    []domain.Task
	Schedule []domain.TimeBlock
	Found    bool
}

// ToggleCompletion flips a task's completed flag and adjusts the schedule to
// match. When the record's date is today and the toggle lands mid-block, the
// in-progress block is sliced at nowMin: the elapsed part keeps the original
// id and is marked done, and the freed remainder becomes a buffer break
// block. Off-today toggles only flip flags. Untoggling never reverses a
// prior slice; the buffer block and " (Done)" label persist.
func ToggleCompletion(rec *domain.DayRecord, taskID string, nowMin int, isToday bool) ToggleResult {
	res := ToggleResult{
		Tasks:    append([]domain.Task(nil), rec.Tasks...),
		Schedule: append([]domain.TimeBlock(nil), rec.Schedule...),
	}

	completing := false
	for i := range res.Tasks {
		if res.Tasks[i].ID == taskID {
			res.Tasks[i].Completed = !res.Tasks[i].Completed
			completing = res.Tasks[i].Completed
			res.Found = true
			break
		}
	}
	if !res.Found {
		return res
	}

	if !completing {
		for i := range res.Schedule {
			if res.Schedule[i].TaskID == taskID {
				res.Schedule[i].IsCompleted = false
			}
		}
		return res
	}

	reconciled := make([]domain.TimeBlock, 0, len(res.Schedule)+1)
	for _, b := range res.Schedule {
		if b.TaskID != taskID {
			reconciled = append(reconciled, b)
			continue
		}
		if isToday && b.Contains(nowMin) {
			done := b
			done.EndTime = domain.FormatClock(nowMin)
			done.IsCompleted = true
			if !strings.HasSuffix(done.Label, DoneSuffix) {
				done.Label += DoneSuffix
			}
			reconciled = append(reconciled, done, bufferBlock(b, nowMin))
			continue
		}
		b.IsCompleted = true
		reconciled = append(reconciled, b)
	}
	res.Schedule = reconciled
	return res
}

// bufferBlock fills the remainder of a sliced block with a low-energy break.
func bufferBlock(original domain.TimeBlock, nowMin int) domain.TimeBlock {
	return domain.TimeBlock{
		ID:          uuid.New().String(),
		StartTime:   domain.FormatClock(nowMin),
		EndTime:     original.EndTime,
		Label:       BufferLabel,
		Type:        domain.BlockBreak,
		EnergyLevel: domain.EnergyLow,
		Domain:      domain.DomainRoutine,
	}
}
