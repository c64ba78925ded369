package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// resolveTask finds a task by id, id prefix or case-insensitive title
// substring. Ambiguous queries are rejected rather than guessed at.
func resolveTask(tasks []domain.Task, query string) (*domain.Task, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("give a task id or part of its title")
	}

	for i := range tasks {
		if tasks[i].ID == query {
			return &tasks[i], nil
		}
	}

	var matches []*domain.Task
	lower := strings.ToLower(query)
	for i := range tasks {
		if strings.HasPrefix(tasks[i].ID, query) ||
			strings.Contains(strings.ToLower(tasks[i].Title), lower) {
			matches = append(matches, &tasks[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no task matches %q", query)
	case 1:
		return matches[0], nil
	default:
		titles := make([]string, 0, len(matches))
		for _, m := range matches {
			titles = append(titles, m.Title)
		}
		return nil, fmt.Errorf("%q is ambiguous, matches: %s", query, strings.Join(titles, ", "))
	}
}
