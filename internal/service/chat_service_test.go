package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/daybreak/internal/contract"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/intelligence"
	"github.com/alexanderramin/daybreak/internal/store"
	"github.com/alexanderramin/daybreak/internal/testutil"
)

func TestChatTurn_DisabledWithoutGateway(t *testing.T) {
	st := setupStore(t)
	svc := NewChatService(st, nil, fixedClock(testDay, "09:00"))

	_, err := svc.Turn(context.Background(), nil, "plan my day")

	var replanErr *contract.ReplanError
	require.ErrorAs(t, err, &replanErr)
	assert.Equal(t, contract.ReplanErrDisabled, replanErr.Code)
}

func TestChatApplyPlan_WritesTodayAndSnapshotsForUndo(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	st.Apply(ctx, testDay, store.Patch{
		Schedule: []domain.TimeBlock{testutil.NewTestBlock("09:00", "10:00", testutil.WithBlockLabel("Old"))},
	})

	task := testutil.NewTestTask("Study algebra")
	svc := NewChatService(st, &fakeGateway{}, fixedClock(testDay, "09:00"))

	rec, err := svc.ApplyPlan(ctx, &intelligence.PlanResult{
		Tasks:       []domain.Task{task},
		Schedule:    []domain.TimeBlock{testutil.NewTestBlock("10:00", "11:00", testutil.WithBlockLabel("Study algebra block"))},
		Explanation: "planned in chat",
	})
	require.NoError(t, err)

	require.Len(t, rec.Schedule, 1)
	assert.Equal(t, "Study algebra block", rec.Schedule[0].Label)
	assert.Equal(t, task.ID, rec.Schedule[0].TaskID)
	assert.Equal(t, "planned in chat", rec.Explanation)

	restored := st.Undo(ctx, testDay)
	require.Len(t, restored.Schedule, 1)
	assert.Equal(t, "Old", restored.Schedule[0].Label)
}

func TestChatApplyPlan_NilPlanRejected(t *testing.T) {
	st := setupStore(t)
	svc := NewChatService(st, &fakeGateway{}, fixedClock(testDay, "09:00"))

	_, err := svc.ApplyPlan(context.Background(), nil)
	require.Error(t, err)
}

func TestDebriefDay_UsesStoredRecord(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	done := testutil.NewTestTask("Write report", testutil.WithCompleted())
	open := testutil.NewTestTask("Study algebra")
	st.Apply(ctx, testDay, store.Patch{
		Tasks:        []domain.Task{done, open},
		Distractions: []string{"phone"},
	})

	svc := NewDebriefService(st, intelligence.NewDebriefService(nil))

	text, err := svc.DebriefDay(ctx, testDay)
	require.NoError(t, err)
	assert.Contains(t, text, "1 of 2 tasks")
}
