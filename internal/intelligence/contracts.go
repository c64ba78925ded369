package intelligence

import (
	"fmt"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/google/uuid"
)

// PlanRequest carries everything the gateway needs to build a schedule for a
// time window.
type PlanRequest struct {
	Tasks       []domain.Task
	WindowStart string // "HH:MM"
	WindowEnd   string // "HH:MM"
	Context     string // free-text user context, may be empty
}

// PlanResult is a gateway-produced plan. Tasks is nil for plain generation;
// for a replan it is the authoritative full replacement of the task list.
// Returned blocks are never trusted to carry ids: they get fresh ones.
type PlanResult struct {
	Tasks       []domain.Task
	Schedule    []domain.TimeBlock
	Explanation string
}

// ConversationTurn records a single exchange in a chat-planning session.
type ConversationTurn struct {
	Role    string // "user" or "assistant"
	Content string
}

// ChatStatus represents the state of a chat-planning conversation.
type ChatStatus string

const (
	ChatStatusGathering ChatStatus = "gathering"
	ChatStatusReady     ChatStatus = "ready"
)

// ChatResult is the outcome of one conversational turn. Plan is non-nil once
// the model has enough to propose; Status turns ready when the user confirms.
type ChatResult struct {
	Message string
	Plan    *PlanResult
	Status  ChatStatus
	RawText string // assistant text to append to the conversation history
}

// taskDraft is the task shape on the gateway wire. Ids may be missing or
// blank; they are defaulted on conversion.
type taskDraft struct {
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

// blockDraft is the schedule-block shape on the gateway wire: no id, no
// completion flag.
type blockDraft struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TaskID      string `json:"task_id,omitempty"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	EnergyLevel string `json:"energy_level,omitempty"`
	Domain      string `json:"domain,omitempty"`
}

// planResponse is the JSON object every planning task must output.
type planResponse struct {
	Tasks       []taskDraft  `json:"tasks,omitempty"`
	Schedule    []blockDraft `json:"schedule"`
	Explanation string       `json:"explanation"`
}

// chatResponse is the JSON object the chat task outputs at each turn.
type chatResponse struct {
	Message string        `json:"message"`
	Plan    *planResponse `json:"plan"`
	Status  string        `json:"status"`
}

func validatePlanResponse(resp planResponse) error {
	for i, b := range resp.Schedule {
		start, err := domain.ParseClock(b.StartTime)
		if err != nil {
			return fmt.Errorf("schedule[%d]: %v", i, err)
		}
		end, err := domain.ParseClock(b.EndTime)
		if err != nil {
			return fmt.Errorf("schedule[%d]: %v", i, err)
		}
		if start >= end {
			return fmt.Errorf("schedule[%d]: start %s not before end %s", i, b.StartTime, b.EndTime)
		}
	}
	for i, t := range resp.Tasks {
		if t.Title == "" {
			return fmt.Errorf("tasks[%d]: title is required", i)
		}
	}
	return nil
}

func validateChatResponse(resp chatResponse) error {
	if resp.Message == "" {
		return fmt.Errorf("message field is required")
	}
	if resp.Status != string(ChatStatusGathering) && resp.Status != string(ChatStatusReady) {
		return fmt.Errorf("status must be %q or %q, got %q", ChatStatusGathering, ChatStatusReady, resp.Status)
	}
	if resp.Plan != nil {
		return validatePlanResponse(*resp.Plan)
	}
	return nil
}

func (r planResponse) toResult() *PlanResult {
	result := &PlanResult{Explanation: r.Explanation}
	if r.Tasks != nil {
		result.Tasks = make([]domain.Task, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			result.Tasks = append(result.Tasks, t.toTask())
		}
	}
	result.Schedule = make([]domain.TimeBlock, 0, len(r.Schedule))
	for _, b := range r.Schedule {
		result.Schedule = append(result.Schedule, b.toBlock())
	}
	return result
}

func (t taskDraft) toTask() domain.Task {
	id := t.ID
	if id == "" {
		id = uuid.New().String()
	}
	priority := domain.PriorityNormal
	if domain.ValidPriorities[t.Priority] {
		priority = domain.Priority(t.Priority)
	}
	energy := domain.EnergyMedium
	if domain.ValidEnergyLevels[t.EnergyLevel] {
		energy = domain.EnergyLevel(t.EnergyLevel)
	}
	life := domain.DomainRoutine
	if domain.ValidLifeDomains[t.Domain] {
		life = domain.LifeDomain(t.Domain)
	}
	return domain.Task{
		ID:              id,
		Title:           t.Title,
		DurationMinutes: t.DurationMinutes,
		IsFixed:         t.IsFixed,
		FixedTime:       t.FixedTime,
		Priority:        priority,
		EnergyLevel:     energy,
		Domain:          life,
		Completed:       t.Completed,
	}
}

func (b blockDraft) toBlock() domain.TimeBlock {
	blockType := domain.BlockWork
	if domain.ValidBlockTypes[b.Type] {
		blockType = domain.BlockType(b.Type)
	}
	var energy domain.EnergyLevel
	if domain.ValidEnergyLevels[b.EnergyLevel] {
		energy = domain.EnergyLevel(b.EnergyLevel)
	}
	var life domain.LifeDomain
	if domain.ValidLifeDomains[b.Domain] {
		life = domain.LifeDomain(b.Domain)
	}
	return domain.TimeBlock{
		ID:          uuid.New().String(),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		TaskID:      b.TaskID,
		Label:       b.Label,
		Type:        blockType,
		EnergyLevel: energy,
		Domain:      life,
	}
}
