package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/llm"
	"github.com/alexanderramin/daybreak/internal/scheduler"
	"github.com/alexanderramin/daybreak/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func debriefFixture() DebriefInput {
	return DebriefInput{
		Date: "2025-03-01",
		Tasks: []domain.Task{
			testutil.NewTestTask("Read", testutil.WithCompleted()),
			testutil.NewTestTask("Write"),
		},
		Distractions: []string{"phone", "email"},
		Balance: []scheduler.DomainMinutes{
			{Domain: domain.DomainAcademic, ScheduledMin: 120, CompletedMin: 60},
			{Domain: domain.DomainHealth, ScheduledMin: 30, CompletedMin: 30},
		},
	}
}

func TestDebrief_UsesModelText(t *testing.T) {
	client := newOllamaStub(t, "A solid day: reading got done even with the phone pulling at you.")
	svc := NewDebriefService(client)

	got := svc.Debrief(context.Background(), debriefFixture())
	assert.Equal(t, "A solid day: reading got done even with the phone pulling at you.", got)
}

func TestDebrief_FallsBackWhenGatewayDown(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 500
	svc := NewDebriefService(llm.NewOllamaClient(cfg, llm.NoopObserver{}))

	got := svc.Debrief(context.Background(), debriefFixture())
	assert.Contains(t, got, "1 of 2 tasks")
	assert.Contains(t, got, "2 distractions")
}

func TestDebrief_NilClientUsesFallback(t *testing.T) {
	svc := NewDebriefService(nil)
	got := svc.Debrief(context.Background(), debriefFixture())
	assert.Contains(t, got, "2025-03-01")
}

func TestFallbackDebrief_NamesTopDomain(t *testing.T) {
	got := fallbackDebrief(debriefFixture())
	assert.Contains(t, got, "Academic")
	assert.Contains(t, got, "90 minutes")
}
