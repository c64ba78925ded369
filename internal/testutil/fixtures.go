package testutil

import (
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithDuration(min int) TaskOption {
	return func(t *domain.Task) {
		t.DurationMinutes = min
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithFixedTime(hhmm string) TaskOption {
	return func(t *domain.Task) {
		t.IsFixed = true
		t.FixedTime = hhmm
	}
}

func WithTaskDomain(d domain.LifeDomain) TaskOption {
	return func(t *domain.Task) {
		t.Domain = d
	}
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func NewTestTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:              uuid.New().String(),
		Title:           title,
		DurationMinutes: 60,
		Priority:        domain.PriorityNormal,
		EnergyLevel:     domain.EnergyMedium,
		Domain:          domain.DomainAcademic,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Block options
type BlockOption func(*domain.TimeBlock)

func WithBlockTask(taskID string) BlockOption {
	return func(b *domain.TimeBlock) {
		b.TaskID = taskID
	}
}

func WithBlockLabel(label string) BlockOption {
	return func(b *domain.TimeBlock) {
		b.Label = label
	}
}

func WithBlockType(bt domain.BlockType) BlockOption {
	return func(b *domain.TimeBlock) {
		b.Type = bt
	}
}

func WithBlockDone() BlockOption {
	return func(b *domain.TimeBlock) {
		b.IsCompleted = true
	}
}

func WithBlockDomain(d domain.LifeDomain) BlockOption {
	return func(b *domain.TimeBlock) {
		b.Domain = d
	}
}

func NewTestBlock(start, end string, opts ...BlockOption) domain.TimeBlock {
	b := domain.TimeBlock{
		ID:          uuid.New().String(),
		StartTime:   start,
		EndTime:     end,
		Label:       "Focus block",
		Type:        domain.BlockWork,
		EnergyLevel: domain.EnergyMedium,
		Domain:      domain.DomainAcademic,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Record options
type RecordOption func(*domain.DayRecord)

func WithTasks(tasks ...domain.Task) RecordOption {
	return func(r *domain.DayRecord) {
		r.Tasks = append(r.Tasks, tasks...)
	}
}

func WithBlocks(blocks ...domain.TimeBlock) RecordOption {
	return func(r *domain.DayRecord) {
		r.Schedule = append(r.Schedule, blocks...)
	}
}

func WithExplanation(text string) RecordOption {
	return func(r *domain.DayRecord) {
		r.Explanation = text
	}
}

func NewTestRecord(date string, opts ...RecordOption) *domain.DayRecord {
	r := domain.NewDayRecord(date)
	for _, opt := range opts {
		opt(r)
	}
	return r
}
