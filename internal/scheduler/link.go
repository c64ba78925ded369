package scheduler

import (
	"strings"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// LinkTasks re-attaches task ids to gateway-returned blocks. A supplied
// taskId is kept when it resolves against the task list. For unlinked work
// blocks, the block label and each task title are matched as case-insensitive
// substrings of one another, first match wins. The heuristic can mis-link
// when titles share substrings; first-match order is part of the contract.
func LinkTasks(blocks []domain.TimeBlock, tasks []domain.Task) []domain.TimeBlock {
	byID := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = true
	}

	linked := append([]domain.TimeBlock(nil), blocks...)
	for i := range linked {
		if linked[i].TaskID != "" && byID[linked[i].TaskID] {
			continue
		}
		linked[i].TaskID = ""
		if linked[i].Type != domain.BlockWork {
			continue
		}
		label := strings.ToLower(linked[i].Label)
		for _, t := range tasks {
			title := strings.ToLower(t.Title)
			if title == "" || label == "" {
				continue
			}
			if strings.Contains(label, title) || strings.Contains(title, label) {
				linked[i].TaskID = t.ID
				break
			}
		}
	}
	return linked
}
