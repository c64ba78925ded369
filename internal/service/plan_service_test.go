package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/daybreak/internal/contract"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/intelligence"
	"github.com/alexanderramin/daybreak/internal/llm"
	"github.com/alexanderramin/daybreak/internal/scheduler"
	"github.com/alexanderramin/daybreak/internal/store"
	"github.com/alexanderramin/daybreak/internal/testutil"
)

const testDay = "2026-03-14"

func TestReplan_RejectsOtherDates(t *testing.T) {
	st := setupStore(t)
	svc := NewPlanService(st, &fakeGateway{}, fixedClock(testDay, "09:45"))

	_, err := svc.Replan(context.Background(), contract.ReplanRequest{Date: "2026-03-13"})

	var replanErr *contract.ReplanError
	require.ErrorAs(t, err, &replanErr)
	assert.Equal(t, contract.ReplanErrNotToday, replanErr.Code)
}

func TestReplan_MergesPastWithRegeneratedFuture(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	write := testutil.NewTestTask("Write report")
	study := testutil.NewTestTask("Study algebra")
	st.Apply(ctx, testDay, store.Patch{
		Tasks: []domain.Task{write, study},
		Schedule: []domain.TimeBlock{
			testutil.NewTestBlock("08:00", "09:00", testutil.WithBlockDone(), testutil.WithBlockLabel("Morning review")),
			testutil.NewTestBlock("09:00", "10:30", testutil.WithBlockLabel("Deep work"), testutil.WithBlockTask(write.ID)),
			testutil.NewTestBlock("11:00", "12:00", testutil.WithBlockLabel("Errands")),
		},
	})

	gateway := &fakeGateway{replanResult: &intelligence.PlanResult{
		Tasks: []domain.Task{write, study},
		Schedule: []domain.TimeBlock{
			testutil.NewTestBlock("10:00", "11:00", testutil.WithBlockLabel("Study algebra session")),
		},
		Explanation: "Shifted study into the late morning.",
	}}
	svc := NewPlanService(st, gateway, fixedClock(testDay, "09:45"))

	resp, err := svc.Replan(ctx, contract.ReplanRequest{Date: testDay})
	require.NoError(t, err)
	assert.False(t, resp.Degraded)
	assert.Equal(t, 2, resp.PastBlocks)
	assert.Equal(t, 1, resp.NewBlocks)

	schedule := resp.Record.Schedule
	require.Len(t, schedule, 3)

	// Finished block survives verbatim.
	assert.Equal(t, "Morning review", schedule[0].Label)
	assert.Equal(t, "08:00", schedule[0].StartTime)
	assert.Equal(t, "09:00", schedule[0].EndTime)

	// The straddling block is truncated at the replan moment.
	assert.Equal(t, "Deep work"+scheduler.PartialSuffix, schedule[1].Label)
	assert.Equal(t, "09:45", schedule[1].EndTime)

	// The future came from the model, linked back to its task.
	assert.Equal(t, "Study algebra session", schedule[2].Label)
	assert.Equal(t, study.ID, schedule[2].TaskID)

	// The window handed to the model starts at the replan moment.
	assert.Equal(t, "09:45", gateway.lastRequest.WindowStart)
}

func TestReplan_SnapshotsForUndo(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	st.Apply(ctx, testDay, store.Patch{
		Schedule:    []domain.TimeBlock{testutil.NewTestBlock("09:00", "10:00", testutil.WithBlockLabel("Original"))},
		Explanation: store.String("the first plan"),
	})

	gateway := &fakeGateway{replanResult: &intelligence.PlanResult{
		Schedule:    []domain.TimeBlock{testutil.NewTestBlock("10:00", "11:00", testutil.WithBlockLabel("Replaced"))},
		Explanation: "new plan",
	}}
	svc := NewPlanService(st, gateway, fixedClock(testDay, "09:00"))

	_, err := svc.Replan(ctx, contract.ReplanRequest{Date: testDay})
	require.NoError(t, err)

	restored, err := svc.Undo(ctx, testDay)
	require.NoError(t, err)
	require.Len(t, restored.Schedule, 1)
	assert.Equal(t, "Original", restored.Schedule[0].Label)
	assert.Equal(t, "the first plan", restored.Explanation)

	// Only one level of history exists.
	again, err := svc.Undo(ctx, testDay)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Schedule[0].Label)
}

func TestReplan_GatewayFailureKeepsSchedule(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Write report")
	st.Apply(ctx, testDay, store.Patch{
		Tasks:    []domain.Task{task},
		Schedule: []domain.TimeBlock{testutil.NewTestBlock("09:00", "17:00", testutil.WithBlockTask(task.ID))},
	})

	gateway := &fakeGateway{err: llm.ErrUnavailable}
	svc := NewPlanService(st, gateway, fixedClock(testDay, "12:00"))

	resp, err := svc.Replan(ctx, contract.ReplanRequest{Date: testDay})
	require.NoError(t, err, "gateway trouble is not a hard failure")
	assert.True(t, resp.Degraded)

	rec := resp.Record
	require.Len(t, rec.Tasks, 1)
	require.Len(t, rec.Schedule, 1)
	assert.Equal(t, "09:00", rec.Schedule[0].StartTime)
	assert.Equal(t, "17:00", rec.Schedule[0].EndTime)
	assert.Contains(t, rec.Explanation, "Replan failed")
	assert.Nil(t, rec.Previous, "a failed replan must not burn the undo slot")
}

func TestReplan_RejectsConcurrentGeneration(t *testing.T) {
	st := setupStore(t)
	svc := NewPlanService(st, &fakeGateway{}, fixedClock(testDay, "09:00")).(*planService)
	svc.generating = true

	_, err := svc.Replan(context.Background(), contract.ReplanRequest{Date: testDay})

	var replanErr *contract.ReplanError
	require.ErrorAs(t, err, &replanErr)
	assert.Equal(t, contract.ReplanErrInFlight, replanErr.Code)
}

func TestGenerate_ReplacesScheduleAndKeepsTasks(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Write report")
	st.Apply(ctx, testDay, store.Patch{Tasks: []domain.Task{task}})

	gateway := &fakeGateway{generateResult: &intelligence.PlanResult{
		Schedule: []domain.TimeBlock{
			testutil.NewTestBlock("08:00", "09:30", testutil.WithBlockLabel("Write report block")),
		},
		Explanation: "Front-loaded the writing.",
	}}
	svc := NewPlanService(st, gateway, fixedClock(testDay, "06:30"))

	resp, err := svc.Generate(ctx, contract.NewGenerateRequest(testDay))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.NewBlocks)

	rec := resp.Record
	require.Len(t, rec.Tasks, 1, "generation never rewrites the task list")
	assert.Equal(t, task.ID, rec.Tasks[0].ID)
	require.Len(t, rec.Schedule, 1)
	assert.Equal(t, task.ID, rec.Schedule[0].TaskID)
	assert.Equal(t, "Front-loaded the writing.", rec.Explanation)

	assert.Equal(t, "06:00", gateway.lastRequest.WindowStart)
	assert.Equal(t, "23:59", gateway.lastRequest.WindowEnd)
}

func TestGenerate_DisabledWithoutGateway(t *testing.T) {
	st := setupStore(t)
	svc := NewPlanService(st, nil, fixedClock(testDay, "06:30"))

	_, err := svc.Generate(context.Background(), contract.NewGenerateRequest(testDay))

	var replanErr *contract.ReplanError
	require.ErrorAs(t, err, &replanErr)
	assert.Equal(t, contract.ReplanErrDisabled, replanErr.Code)
}

func TestGenerate_GatewayFailureDegrades(t *testing.T) {
	st := setupStore(t)
	svc := NewPlanService(st, &fakeGateway{err: errors.New("boom")}, fixedClock(testDay, "06:30"))

	resp, err := svc.Generate(context.Background(), contract.NewGenerateRequest(testDay))
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Contains(t, resp.Record.Explanation, "Plan generation failed")
	assert.Empty(t, resp.Record.Schedule)
}
