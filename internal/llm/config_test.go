package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DAYBREAK_LLM_ENABLED", "false")
	t.Setenv("DAYBREAK_LLM_ENDPOINT", "http://remote:11434")
	t.Setenv("DAYBREAK_LLM_MODEL", "qwen2.5")
	t.Setenv("DAYBREAK_LLM_TIMEOUT_MS", "5000")
	t.Setenv("DAYBREAK_LLM_REPLAN_TIMEOUT_MS", "9000")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://remote:11434", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 9000, cfg.TaskTimeout(TaskReplan))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 1234
	cfg.Tasks[TaskChat] = TaskConfig{Temperature: 0.4}
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskChat))
}
