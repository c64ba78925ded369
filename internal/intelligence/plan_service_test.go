package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/llm"
	"github.com/alexanderramin/daybreak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newOllamaStub returns an httptest server that answers /api/generate with
// the given model response text, and a client wired to it.
func newOllamaStub(t *testing.T, responseText string) llm.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": responseText,
		})
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func TestPlanService_Generate_ParsesSchedule(t *testing.T) {
	client := newOllamaStub(t, `{
		"schedule": [
			{"start_time": "09:00", "end_time": "10:30", "label": "Deep work", "type": "work", "energy_level": "high", "domain": "Academic"},
			{"start_time": "10:30", "end_time": "10:45", "label": "Break", "type": "break"}
		],
		"explanation": "Hard thinking first."
	}`)
	svc := NewPlanService(client)

	result, err := svc.Generate(context.Background(), PlanRequest{
		Tasks:       []domain.Task{testutil.NewTestTask("Deep work")},
		WindowStart: "06:00",
		WindowEnd:   "23:59",
	})
	require.NoError(t, err)

	assert.Nil(t, result.Tasks, "generation never edits the task list")
	require.Len(t, result.Schedule, 2)
	assert.NotEmpty(t, result.Schedule[0].ID, "blocks get fresh ids")
	assert.Equal(t, domain.BlockWork, result.Schedule[0].Type)
	assert.Equal(t, domain.EnergyHigh, result.Schedule[0].EnergyLevel)
	assert.False(t, result.Schedule[0].IsCompleted)
	assert.Equal(t, "Hard thinking first.", result.Explanation)
}

func TestPlanService_Replan_ReturnsFullTaskList(t *testing.T) {
	client := newOllamaStub(t, `{
		"tasks": [
			{"id": "t1", "title": "Finish essay", "duration_minutes": 60, "priority": "high"},
			{"title": "New errand", "duration_minutes": 30}
		],
		"schedule": [
			{"start_time": "14:00", "end_time": "15:00", "task_id": "t1", "label": "Finish essay", "type": "work"}
		],
		"explanation": "Afternoon reset."
	}`)
	svc := NewPlanService(client)

	result, err := svc.Replan(context.Background(), PlanRequest{
		WindowStart: "14:00",
		WindowEnd:   "23:59",
	})
	require.NoError(t, err)

	require.Len(t, result.Tasks, 2)
	assert.Equal(t, "t1", result.Tasks[0].ID)
	assert.Equal(t, domain.PriorityHigh, result.Tasks[0].Priority)
	assert.NotEmpty(t, result.Tasks[1].ID, "missing ids are defaulted")
	assert.Equal(t, domain.PriorityNormal, result.Tasks[1].Priority)
}

func TestPlanService_Replan_MissingTaskListKeepsInput(t *testing.T) {
	client := newOllamaStub(t, `{
		"schedule": [],
		"explanation": "Nothing left to do."
	}`)
	svc := NewPlanService(client)

	tasks := []domain.Task{testutil.NewTestTask("Keep me")}
	result, err := svc.Replan(context.Background(), PlanRequest{Tasks: tasks})
	require.NoError(t, err)
	assert.Equal(t, tasks, result.Tasks)
}

func TestPlanService_Generate_RejectsMalformedTimes(t *testing.T) {
	client := newOllamaStub(t, `{
		"schedule": [{"start_time": "9am", "end_time": "10:00", "label": "x", "type": "work"}],
		"explanation": "bad"
	}`)
	svc := NewPlanService(client)

	_, err := svc.Generate(context.Background(), PlanRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestPlanService_Generate_RejectsInvertedBlock(t *testing.T) {
	client := newOllamaStub(t, `{
		"schedule": [{"start_time": "11:00", "end_time": "10:00", "label": "x", "type": "work"}],
		"explanation": "bad"
	}`)
	svc := NewPlanService(client)

	_, err := svc.Generate(context.Background(), PlanRequest{})
	assert.Error(t, err)
}

func TestPlanService_ChatToSchedule_Turn(t *testing.T) {
	client := newOllamaStub(t, `{
		"message": "Here is a draft. Shall I lock it in?",
		"plan": {
			"tasks": [{"title": "Morning run", "duration_minutes": 30, "domain": "Health"}],
			"schedule": [{"start_time": "07:00", "end_time": "07:30", "label": "Morning run", "type": "work"}],
			"explanation": "Start with movement."
		},
		"status": "gathering"
	}`)
	svc := NewPlanService(client)

	conv := []ConversationTurn{
		{Role: "User", Content: "plan my morning"},
		{Role: "Assistant", Content: "What do you want to get done?"},
	}
	result, err := svc.ChatToSchedule(context.Background(), conv, "a run, then study")
	require.NoError(t, err)

	assert.Equal(t, ChatStatusGathering, result.Status)
	require.NotNil(t, result.Plan)
	assert.Len(t, result.Plan.Tasks, 1)
	assert.Equal(t, domain.DomainHealth, result.Plan.Tasks[0].Domain)
	assert.NotEmpty(t, result.RawText)
}

func TestPlanService_ChatToSchedule_RejectsUnknownStatus(t *testing.T) {
	client := newOllamaStub(t, `{"message": "hm", "plan": null, "status": "confused"}`)
	svc := NewPlanService(client)

	_, err := svc.ChatToSchedule(context.Background(), nil, "hello")
	assert.Error(t, err)
}

func TestPlanService_GatewayDown(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = "http://127.0.0.1:1" // nothing listens here
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 500
	svc := NewPlanService(llm.NewOllamaClient(cfg, llm.NoopObserver{}))

	_, err := svc.Replan(context.Background(), PlanRequest{})
	assert.Error(t, err)
}
