package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFile() *DayFile {
	taskID := "t-1"
	return &DayFile{
		Date: "2026-03-14",
		Tasks: []TaskEntry{
			{ID: taskID, Title: "Write report", DurationMinutes: 90, Priority: "high", EnergyLevel: "high", Domain: "Academic"},
		},
		Schedule: []BlockEntry{
			{StartTime: "09:00", EndTime: "10:30", TaskID: &taskID, Label: "Write report", Type: "work"},
		},
	}
}

func TestValidateDayFile_AcceptsValidFile(t *testing.T) {
	assert.Empty(t, ValidateDayFile(validFile()))
}

func TestValidateDayFile_CollectsAllErrors(t *testing.T) {
	missing := "nope"
	file := &DayFile{
		Date: "14-03-2026",
		Tasks: []TaskEntry{
			{Title: "", DurationMinutes: 0, Priority: "urgent"},
		},
		Schedule: []BlockEntry{
			{StartTime: "25:00", EndTime: "09:00", TaskID: &missing, Label: ""},
		},
	}

	errs := ValidateDayFile(file)
	require.NotEmpty(t, errs)

	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	joined := ""
	for _, m := range messages {
		joined += m + "\n"
	}
	assert.Contains(t, joined, "date: invalid format")
	assert.Contains(t, joined, "title is required")
	assert.Contains(t, joined, "duration_minutes must be positive")
	assert.Contains(t, joined, "priority: invalid value")
	assert.Contains(t, joined, "start_time")
	assert.Contains(t, joined, "label is required")
	assert.Contains(t, joined, "does not match any task")
}

func TestValidateDayFile_RejectsInvertedBlock(t *testing.T) {
	file := validFile()
	file.Schedule[0].StartTime = "11:00"
	file.Schedule[0].EndTime = "10:00"

	errs := ValidateDayFile(file)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "must be before")
}

func TestValidateDayFile_RejectsDuplicateTaskIDs(t *testing.T) {
	file := validFile()
	file.Tasks = append(file.Tasks, TaskEntry{ID: "t-1", Title: "Again", DurationMinutes: 30})

	errs := ValidateDayFile(file)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate id")
}

func TestValidateDayFile_FixedTaskNeedsTime(t *testing.T) {
	file := validFile()
	file.Tasks[0].IsFixed = true
	file.Tasks[0].FixedTime = ""

	errs := ValidateDayFile(file)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "fixed_time")
}
