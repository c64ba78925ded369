package scheduler

import "github.com/alexanderramin/daybreak/internal/domain"

// DomainMinutes aggregates scheduled and completed minutes per life domain.
// Display-only; nothing here feeds scheduling decisions.
type DomainMinutes struct {
	Domain       domain.LifeDomain
	ScheduledMin int
	CompletedMin int
}

// lifeDomainOrder fixes the display order of the balance summary.
var lifeDomainOrder = []domain.LifeDomain{
	domain.DomainAcademic,
	domain.DomainSkill,
	domain.DomainHealth,
	domain.DomainSpirituality,
	domain.DomainRoutine,
}

// AggregateDomains sums block minutes by life domain, skipping blocks with
// no domain tag. Breaks count toward their tagged domain; the buffer block
// is tagged Routine on insertion.
func AggregateDomains(schedule []domain.TimeBlock) []DomainMinutes {
	totals := make(map[domain.LifeDomain]*DomainMinutes)
	for _, b := range schedule {
		if b.Domain == "" {
			continue
		}
		agg, ok := totals[b.Domain]
		if !ok {
			agg = &DomainMinutes{Domain: b.Domain}
			totals[b.Domain] = agg
		}
		min := b.DurationMinutes()
		agg.ScheduledMin += min
		if b.IsCompleted {
			agg.CompletedMin += min
		}
	}

	out := make([]DomainMinutes, 0, len(totals))
	for _, d := range lifeDomainOrder {
		if agg, ok := totals[d]; ok {
			out = append(out, *agg)
		}
	}
	return out
}
