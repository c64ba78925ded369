package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRecord_CloneIsDeep(t *testing.T) {
	rec := &DayRecord{
		Date:         "2025-03-01",
		Tasks:        []Task{{ID: "t1", Title: "Read"}},
		Schedule:     []TimeBlock{{ID: "b1", StartTime: "09:00", EndTime: "10:00"}},
		Explanation:  "morning focus",
		Distractions: []string{"phone"},
		Previous: &DaySnapshot{
			Tasks: []Task{{ID: "t0", Title: "Old"}},
		},
	}

	c := rec.Clone()
	c.Tasks[0].Title = "Changed"
	c.Schedule[0].EndTime = "11:00"
	c.Distractions[0] = "tv"
	c.Previous.Tasks[0].Title = "Mutated"

	assert.Equal(t, "Read", rec.Tasks[0].Title)
	assert.Equal(t, "10:00", rec.Schedule[0].EndTime)
	assert.Equal(t, "phone", rec.Distractions[0])
	assert.Equal(t, "Old", rec.Previous.Tasks[0].Title)
}

func TestDayRecord_SnapshotCopies(t *testing.T) {
	rec := &DayRecord{
		Date:        "2025-03-01",
		Tasks:       []Task{{ID: "t1"}},
		Schedule:    []TimeBlock{{ID: "b1"}},
		Explanation: "x",
	}
	snap := rec.Snapshot()
	rec.Tasks[0].ID = "mutated"
	assert.Equal(t, "t1", snap.Tasks[0].ID)
	assert.Equal(t, "x", snap.Explanation)
}

func TestDayRecord_TaskByID(t *testing.T) {
	rec := &DayRecord{Tasks: []Task{{ID: "a"}, {ID: "b"}}}
	got := rec.TaskByID("b")
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)
	assert.Nil(t, rec.TaskByID("zzz"))
}
