package intelligence

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/llm"
	"github.com/alexanderramin/daybreak/internal/scheduler"
)

// DebriefInput is the finished day handed to the debrief writer.
type DebriefInput struct {
	Date         string
	Tasks        []domain.Task
	Schedule     []domain.TimeBlock
	Distractions []string
	Balance      []scheduler.DomainMinutes
}

// DebriefService writes the reflective close-of-day summary.
type DebriefService interface {
	// Debrief never fails: when the model is unreachable it degrades to a
	// deterministic local summary.
	Debrief(ctx context.Context, input DebriefInput) string
}

type debriefService struct {
	client llm.Client
}

// NewDebriefService creates a DebriefService backed by an LLM client.
// A nil client always produces the local fallback.
func NewDebriefService(client llm.Client) DebriefService {
	return &debriefService{client: client}
}

func (s *debriefService) Debrief(ctx context.Context, input DebriefInput) string {
	if s.client == nil {
		return fallbackDebrief(input)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDebrief,
		SystemPrompt: debriefSystemPrompt,
		UserPrompt:   buildDebriefPrompt(input),
	})
	if err != nil {
		return fallbackDebrief(input)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return fallbackDebrief(input)
	}
	return text
}

func buildDebriefPrompt(input DebriefInput) string {
	var b strings.Builder

	b.WriteString("date: ")
	b.WriteString(input.Date)
	b.WriteString("\ntasks:\n")
	for _, t := range input.Tasks {
		raw, err := json.Marshal(t)
		if err != nil {
			continue
		}
		b.WriteString("  ")
		b.Write(raw)
		b.WriteString("\n")
	}

	if len(input.Balance) > 0 {
		b.WriteString("domain_minutes:\n")
		for _, d := range input.Balance {
			raw, _ := json.Marshal(map[string]any{
				"domain": d.Domain, "scheduled_min": d.ScheduledMin, "completed_min": d.CompletedMin,
			})
			b.WriteString("  ")
			b.Write(raw)
			b.WriteString("\n")
		}
	}

	if len(input.Distractions) > 0 {
		b.WriteString("distractions:\n")
		for _, d := range input.Distractions {
			b.WriteString("  - ")
			b.WriteString(d)
			b.WriteString("\n")
		}
	}

	return b.String()
}
