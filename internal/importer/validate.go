package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// ValidateDayFile checks a day file for errors before conversion. Returns a
// slice of all validation errors found so the user can fix the file in one
// pass.
func ValidateDayFile(file *DayFile) []error {
	var errs []error

	if file.Date == "" {
		errs = append(errs, fmt.Errorf("date is required"))
	} else if _, err := time.Parse("2006-01-02", file.Date); err != nil {
		errs = append(errs, fmt.Errorf("date: invalid format %q (expected YYYY-MM-DD)", file.Date))
	}

	taskIDs := make(map[string]bool)
	for i, task := range file.Tasks {
		errs = append(errs, validateTaskEntry(i, task)...)
		if task.ID != "" {
			if taskIDs[task.ID] {
				errs = append(errs, fmt.Errorf("tasks[%d]: duplicate id %q", i, task.ID))
			}
			taskIDs[task.ID] = true
		}
	}

	for i, block := range file.Schedule {
		errs = append(errs, validateBlockEntry(i, block, taskIDs)...)
	}

	return errs
}

func validateTaskEntry(i int, task TaskEntry) []error {
	var errs []error

	if task.Title == "" {
		errs = append(errs, fmt.Errorf("tasks[%d]: title is required", i))
	}
	if task.DurationMinutes <= 0 {
		errs = append(errs, fmt.Errorf("tasks[%d]: duration_minutes must be positive", i))
	}
	if task.IsFixed {
		if _, err := domain.ParseClock(task.FixedTime); err != nil {
			errs = append(errs, fmt.Errorf("tasks[%d]: fixed_time: %v", i, err))
		}
	}
	if task.Priority != "" && !domain.ValidPriorities[task.Priority] {
		errs = append(errs, fmt.Errorf("tasks[%d]: priority: invalid value %q", i, task.Priority))
	}
	if task.EnergyLevel != "" && !domain.ValidEnergyLevels[task.EnergyLevel] {
		errs = append(errs, fmt.Errorf("tasks[%d]: energy_level: invalid value %q", i, task.EnergyLevel))
	}
	if task.Domain != "" && !domain.ValidLifeDomains[task.Domain] {
		errs = append(errs, fmt.Errorf("tasks[%d]: domain: invalid value %q", i, task.Domain))
	}

	return errs
}

func validateBlockEntry(i int, block BlockEntry, taskIDs map[string]bool) []error {
	var errs []error

	start, startErr := domain.ParseClock(block.StartTime)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("schedule[%d]: start_time: %v", i, startErr))
	}
	end, endErr := domain.ParseClock(block.EndTime)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("schedule[%d]: end_time: %v", i, endErr))
	}
	if startErr == nil && endErr == nil && start >= end {
		errs = append(errs, fmt.Errorf("schedule[%d]: start_time %q must be before end_time %q", i, block.StartTime, block.EndTime))
	}

	if block.Label == "" {
		errs = append(errs, fmt.Errorf("schedule[%d]: label is required", i))
	}
	if block.Type != "" && !domain.ValidBlockTypes[block.Type] {
		errs = append(errs, fmt.Errorf("schedule[%d]: type: invalid value %q", i, block.Type))
	}
	if block.TaskID != nil && !taskIDs[*block.TaskID] {
		errs = append(errs, fmt.Errorf("schedule[%d]: task_id %q does not match any task in this file", i, *block.TaskID))
	}
	if block.Domain != "" && !domain.ValidLifeDomains[block.Domain] {
		errs = append(errs, fmt.Errorf("schedule[%d]: domain: invalid value %q", i, block.Domain))
	}

	return errs
}
