package domain

// DaySnapshot captures the replaceable portion of a DayRecord immediately
// before a destructive mutation. At most one snapshot exists per record; each
// replan overwrites it and an undo clears it.
type DaySnapshot struct {
	Tasks       []Task      `json:"tasks"`
	Schedule    []TimeBlock `json:"schedule"`
	Explanation string      `json:"explanation"`
}

// DayRecord is the full planning state for one calendar date, keyed by
// "YYYY-MM-DD". The schedule slice is not guaranteed sorted by time;
// consumers sort by start time before rendering or reasoning about "now".
type DayRecord struct {
	Date         string       `json:"date"`
	Tasks        []Task       `json:"tasks"`
	Schedule     []TimeBlock  `json:"schedule"`
	Explanation  string       `json:"explanation,omitempty"`
	Distractions []string     `json:"distractions,omitempty"`
	Previous     *DaySnapshot `json:"previous_version,omitempty"`
}

// NewDayRecord returns the lazily-created empty record for a date.
func NewDayRecord(date string) *DayRecord {
	return &DayRecord{Date: date}
}

// Clone returns a deep copy so callers can mutate freely while the stored
// record stays untouched until a write-back.
func (r *DayRecord) Clone() *DayRecord {
	c := &DayRecord{
		Date:        r.Date,
		Explanation: r.Explanation,
	}
	c.Tasks = append([]Task(nil), r.Tasks...)
	c.Schedule = append([]TimeBlock(nil), r.Schedule...)
	c.Distractions = append([]string(nil), r.Distractions...)
	if r.Previous != nil {
		c.Previous = &DaySnapshot{
			Tasks:       append([]Task(nil), r.Previous.Tasks...),
			Schedule:    append([]TimeBlock(nil), r.Previous.Schedule...),
			Explanation: r.Previous.Explanation,
		}
	}
	return c
}

// Snapshot copies the record's replaceable fields into a DaySnapshot.
func (r *DayRecord) Snapshot() *DaySnapshot {
	return &DaySnapshot{
		Tasks:       append([]Task(nil), r.Tasks...),
		Schedule:    append([]TimeBlock(nil), r.Schedule...),
		Explanation: r.Explanation,
	}
}

// TaskByID returns the task with the given id, or nil.
func (r *DayRecord) TaskByID(id string) *Task {
	for i := range r.Tasks {
		if r.Tasks[i].ID == id {
			return &r.Tasks[i]
		}
	}
	return nil
}
