package domain

// Task is a unit of work the user wants done on some day.
type Task struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	DurationMinutes int         `json:"duration_minutes"`
	IsFixed         bool        `json:"is_fixed"`
	FixedTime       string      `json:"fixed_time,omitempty"` // "HH:MM", required when IsFixed
	Priority        Priority    `json:"priority"`
	EnergyLevel     EnergyLevel `json:"energy_level"`
	Domain          LifeDomain  `json:"domain"`
	Completed       bool        `json:"completed"`
}

// TimeBlock is a scheduled interval on a day's timeline, optionally linked
// to a task. TaskID is a weak reference: the task may have been deleted by a
// later replan, and lookup failure simply means "no task".
type TimeBlock struct {
	ID          string      `json:"id"`
	StartTime   string      `json:"start_time"` // "HH:MM", StartTime < EndTime
	EndTime     string      `json:"end_time"`
	TaskID      string      `json:"task_id,omitempty"`
	Label       string      `json:"label"`
	Type        BlockType   `json:"type"`
	IsCompleted bool        `json:"is_completed"`
	EnergyLevel EnergyLevel `json:"energy_level,omitempty"`
	Domain      LifeDomain  `json:"domain,omitempty"`
}

// DurationMinutes returns the block's length in minutes.
func (b TimeBlock) DurationMinutes() int {
	return MinuteOf(b.EndTime) - MinuteOf(b.StartTime)
}

// Contains reports whether the clock minute m falls strictly inside the block.
func (b TimeBlock) Contains(m int) bool {
	return MinuteOf(b.StartTime) < m && m < MinuteOf(b.EndTime)
}
