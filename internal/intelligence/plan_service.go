package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/llm"
)

// PlanService is the plan generation gateway: every way the app asks the
// model for a schedule goes through here. Implementations must not return
// overlapping blocks, but callers do not validate that beyond display.
type PlanService interface {
	// Generate builds a schedule for the window from the given tasks.
	// The result's Tasks field is nil: generation does not edit the list.
	Generate(ctx context.Context, req PlanRequest) (*PlanResult, error)

	// Replan builds a schedule for the remainder of the day and returns the
	// authoritative full replacement task list alongside it.
	Replan(ctx context.Context, req PlanRequest) (*PlanResult, error)

	// ChatToSchedule advances a conversational planning session by one turn.
	ChatToSchedule(ctx context.Context, conv []ConversationTurn, userMessage string) (*ChatResult, error)
}

type planService struct {
	client llm.Client
}

// NewPlanService creates a PlanService backed by an LLM client.
func NewPlanService(client llm.Client) PlanService {
	return &planService{client: client}
}

func (s *planService) Generate(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskGenerate,
		SystemPrompt: generateSystemPrompt,
		UserPrompt:   buildPlanPrompt(req, false),
	})
	if err != nil {
		return nil, fmt.Errorf("llm generate failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[planResponse](resp.Text, validatePlanResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to extract plan: %w", err)
	}

	result := parsed.toResult()
	result.Tasks = nil // generation never edits the task list
	return result, nil
}

func (s *planService) Replan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReplan,
		SystemPrompt: replanSystemPrompt,
		UserPrompt:   buildPlanPrompt(req, true),
	})
	if err != nil {
		return nil, fmt.Errorf("llm replan failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[planResponse](resp.Text, validatePlanResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to extract replan: %w", err)
	}

	result := parsed.toResult()
	if result.Tasks == nil {
		// The model dropped the task list: treat the input as unchanged
		// rather than wiping the day.
		result.Tasks = append([]domain.Task(nil), req.Tasks...)
	}
	return result, nil
}

func (s *planService) ChatToSchedule(ctx context.Context, conv []ConversationTurn, userMessage string) (*ChatResult, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   buildChatPrompt(conv, userMessage),
	})
	if err != nil {
		return nil, fmt.Errorf("llm chat failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[chatResponse](resp.Text, validateChatResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to extract chat turn: %w", err)
	}

	result := &ChatResult{
		Message: parsed.Message,
		Status:  ChatStatus(parsed.Status),
		RawText: resp.Text,
	}
	if parsed.Plan != nil {
		result.Plan = parsed.Plan.toResult()
	}
	return result, nil
}

// buildPlanPrompt renders the task list and window as the user prompt.
func buildPlanPrompt(req PlanRequest, replan bool) string {
	var b strings.Builder

	if replan {
		b.WriteString("current_time: ")
	} else {
		b.WriteString("window_start: ")
	}
	b.WriteString(req.WindowStart)
	b.WriteString("\nwindow_end: ")
	b.WriteString(req.WindowEnd)
	b.WriteString("\n")

	if req.Context != "" {
		b.WriteString("context: ")
		b.WriteString(req.Context)
		b.WriteString("\n")
	}

	b.WriteString("tasks:\n")
	if len(req.Tasks) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, t := range req.Tasks {
		raw, err := json.Marshal(t)
		if err != nil {
			continue
		}
		b.WriteString("  ")
		b.Write(raw)
		b.WriteString("\n")
	}

	return b.String()
}

func buildChatPrompt(conv []ConversationTurn, currentMessage string) string {
	var b strings.Builder
	for _, turn := range conv {
		b.WriteString(turn.Role)
		b.WriteString(": ")
		b.WriteString(turn.Content)
		b.WriteString("\n\n")
	}
	b.WriteString("User: ")
	b.WriteString(currentMessage)
	return b.String()
}
