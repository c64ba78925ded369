package importer

import (
	"github.com/google/uuid"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// ToRecord converts a validated day file into a day record. Missing ids are
// assigned and empty block types default to work.
func ToRecord(file *DayFile) *domain.DayRecord {
	rec := domain.NewDayRecord(file.Date)
	rec.Explanation = file.Explanation
	rec.Distractions = append(rec.Distractions, file.Distractions...)

	for _, entry := range file.Tasks {
		task := domain.Task{
			ID:              entry.ID,
			Title:           entry.Title,
			DurationMinutes: entry.DurationMinutes,
			IsFixed:         entry.IsFixed,
			FixedTime:       entry.FixedTime,
			Priority:        domain.Priority(entry.Priority),
			EnergyLevel:     domain.EnergyLevel(entry.EnergyLevel),
			Domain:          domain.LifeDomain(entry.Domain),
			Completed:       entry.Completed,
		}
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		if task.Priority == "" {
			task.Priority = domain.PriorityNormal
		}
		if task.EnergyLevel == "" {
			task.EnergyLevel = domain.EnergyMedium
		}
		rec.Tasks = append(rec.Tasks, task)
	}

	for _, entry := range file.Schedule {
		taskID := ""
		if entry.TaskID != nil {
			taskID = *entry.TaskID
		}
		block := domain.TimeBlock{
			ID:          entry.ID,
			StartTime:   entry.StartTime,
			EndTime:     entry.EndTime,
			TaskID:      taskID,
			Label:       entry.Label,
			Type:        domain.BlockType(entry.Type),
			IsCompleted: entry.IsCompleted,
			EnergyLevel: domain.EnergyLevel(entry.EnergyLevel),
			Domain:      domain.LifeDomain(entry.Domain),
		}
		if block.ID == "" {
			block.ID = uuid.NewString()
		}
		if block.Type == "" {
			block.Type = domain.BlockWork
		}
		rec.Schedule = append(rec.Schedule, block)
	}

	return rec
}

// FromRecord converts a day record into its exportable day file form.
func FromRecord(rec *domain.DayRecord) *DayFile {
	file := &DayFile{
		Date:         rec.Date,
		Explanation:  rec.Explanation,
		Distractions: rec.Distractions,
	}

	for _, task := range rec.Tasks {
		file.Tasks = append(file.Tasks, TaskEntry{
			ID:              task.ID,
			Title:           task.Title,
			DurationMinutes: task.DurationMinutes,
			IsFixed:         task.IsFixed,
			FixedTime:       task.FixedTime,
			Priority:        string(task.Priority),
			EnergyLevel:     string(task.EnergyLevel),
			Domain:          string(task.Domain),
			Completed:       task.Completed,
		})
	}

	for _, block := range rec.Schedule {
		var taskID *string
		if block.TaskID != "" {
			id := block.TaskID
			taskID = &id
		}
		file.Schedule = append(file.Schedule, BlockEntry{
			ID:          block.ID,
			StartTime:   block.StartTime,
			EndTime:     block.EndTime,
			TaskID:      taskID,
			Label:       block.Label,
			Type:        string(block.Type),
			IsCompleted: block.IsCompleted,
			EnergyLevel: string(block.EnergyLevel),
			Domain:      string(block.Domain),
		})
	}

	return file
}
