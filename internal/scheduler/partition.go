package scheduler

import (
	"sort"
	"strings"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// PartialSuffix marks a block truncated at the replan boundary.
const PartialSuffix = " (Partial)"

// Partition splits a day's schedule at the minute nowMin and returns the
// frozen "past" half, in original relative order:
//   - blocks ending at or before nowMin are kept verbatim
//   - a block straddling nowMin is truncated to end at nowMin, its id marked
//     derived and its label suffixed " (Partial)" (unless already present);
//     completion state and domain carry through unchanged
//   - blocks starting at or after nowMin are dropped; regenerated blocks
//     replace them
func Partition(schedule []domain.TimeBlock, nowMin int) []domain.TimeBlock {
	past := make([]domain.TimeBlock, 0, len(schedule))
	for _, b := range schedule {
		start, end := domain.MinuteOf(b.StartTime), domain.MinuteOf(b.EndTime)
		switch {
		case end <= nowMin:
			past = append(past, b)
		case start < nowMin && nowMin < end:
			truncated := b
			truncated.ID = b.ID + "-partial"
			truncated.EndTime = domain.FormatClock(nowMin)
			if !strings.HasSuffix(truncated.Label, PartialSuffix) {
				truncated.Label += PartialSuffix
			}
			past = append(past, truncated)
		}
	}
	return past
}

// SortByStart returns a copy of the schedule ordered by start time. The
// stored schedule keeps merge order; display paths sort through this.
func SortByStart(schedule []domain.TimeBlock) []domain.TimeBlock {
	sorted := append([]domain.TimeBlock(nil), schedule...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return domain.MinuteOf(sorted[i].StartTime) < domain.MinuteOf(sorted[j].StartTime)
	})
	return sorted
}
