package intelligence

import (
	"fmt"
	"strings"
)

// fallbackDebrief produces a deterministic close-of-day summary when the
// model is unreachable. Counts and minutes only; no judgment calls.
func fallbackDebrief(input DebriefInput) string {
	done := 0
	for _, t := range input.Tasks {
		if t.Completed {
			done++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You completed %d of %d tasks on %s.", done, len(input.Tasks), input.Date)

	var completedMin int
	for _, d := range input.Balance {
		completedMin += d.CompletedMin
	}
	if completedMin > 0 {
		fmt.Fprintf(&b, " %d minutes of scheduled work got done", completedMin)
		if top := topDomain(input); top != "" {
			fmt.Fprintf(&b, ", most of it in %s", top)
		}
		b.WriteString(".")
	}

	if n := len(input.Distractions); n > 0 {
		fmt.Fprintf(&b, " You logged %d distraction", n)
		if n > 1 {
			b.WriteString("s")
		}
		b.WriteString(" along the way.")
	}

	return b.String()
}

func topDomain(input DebriefInput) string {
	best := ""
	bestMin := 0
	for _, d := range input.Balance {
		if d.CompletedMin > bestMin {
			best = string(d.Domain)
			bestMin = d.CompletedMin
		}
	}
	return best
}
