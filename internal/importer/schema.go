package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// DayFile is the JSON structure for exporting and importing a single day.
type DayFile struct {
	Date         string       `json:"date"`
	Tasks        []TaskEntry  `json:"tasks"`
	Schedule     []BlockEntry `json:"schedule,omitempty"`
	Explanation  string       `json:"explanation,omitempty"`
	Distractions []string     `json:"distractions,omitempty"`
}

// TaskEntry defines a task in the day file. ID is optional on import and
// assigned when missing.
type TaskEntry struct {
	ID              string `json:"id,omitempty"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	IsFixed         bool   `json:"is_fixed,omitempty"`
	FixedTime       string `json:"fixed_time,omitempty"`
	Priority        string `json:"priority,omitempty"`
	EnergyLevel     string `json:"energy_level,omitempty"`
	Domain          string `json:"domain,omitempty"`
	Completed       bool   `json:"completed,omitempty"`
}

// BlockEntry defines a schedule block in the day file. TaskID may reference
// a task id from the same file.
type BlockEntry struct {
	ID          string  `json:"id,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	TaskID      *string `json:"task_id,omitempty"`
	Label       string  `json:"label"`
	Type        string  `json:"type,omitempty"`
	IsCompleted bool    `json:"is_completed,omitempty"`
	EnergyLevel string  `json:"energy_level,omitempty"`
	Domain      string  `json:"domain,omitempty"`
}

// LoadDayFile reads and parses a day file from disk.
func LoadDayFile(path string) (*DayFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading day file: %w", err)
	}

	var file DayFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing day file: %w", err)
	}
	return &file, nil
}

// WriteDayFile serializes a day file with stable indentation.
func WriteDayFile(path string, file *DayFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding day file: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing day file: %w", err)
	}
	return nil
}
