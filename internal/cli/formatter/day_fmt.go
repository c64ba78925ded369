package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/daybreak/internal/contract"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/scheduler"
)

// FormatDay renders a full day view: tasks, schedule, balance and the
// planner's explanation.
func FormatDay(view *contract.DayView) string {
	var b strings.Builder

	title := view.Record.Date
	if view.IsToday {
		title += "  (today)"
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	b.WriteString(FormatTasks(view.Record.Tasks))
	b.WriteString("\n")
	b.WriteString(FormatSchedule(view.Sorted))

	if len(view.Balance) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatBalance(view.Balance))
	}

	if view.Record.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(Header("Plan Notes"))
		b.WriteString("\n")
		b.WriteString(wrapIndent(view.Record.Explanation, "  "))
		b.WriteString("\n")
	}

	if len(view.Record.Distractions) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Distractions"))
		b.WriteString("\n")
		for _, d := range view.Record.Distractions {
			fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("·"), d)
		}
	}

	return b.String()
}

// FormatTasks renders the task list as a table.
func FormatTasks(tasks []domain.Task) string {
	var b strings.Builder
	b.WriteString(Header("Tasks"))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(Dim("  No tasks yet. Add one with: daybreak task add"))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"", "Task", "Min", "Priority", "Domain", "ID"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		mark := StyleDim.Render("·")
		title := t.Title
		if t.Completed {
			mark = StyleGreen.Render("✓")
			title = StyleDim.Render(title)
		}
		fixed := ""
		if t.IsFixed {
			fixed = StylePurple.Render(" @" + t.FixedTime)
		}
		rows = append(rows, []string{
			mark,
			title + fixed,
			fmt.Sprintf("%d", t.DurationMinutes),
			PriorityBadge(t.Priority),
			DomainStyle(t.Domain).Render(string(t.Domain)),
			Dim(shortID(t.ID)),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatSchedule renders time blocks in order.
func FormatSchedule(blocks []domain.TimeBlock) string {
	var b strings.Builder
	b.WriteString(Header("Schedule"))
	b.WriteString("\n")
	if len(blocks) == 0 {
		b.WriteString(Dim("  Nothing scheduled. Run: daybreak plan"))
		b.WriteString("\n")
		return b.String()
	}

	for _, block := range blocks {
		label := block.Label
		if block.IsCompleted {
			label = StyleDim.Render(label)
		}
		fmt.Fprintf(&b, "  %s %s %s %s  %s\n",
			BlockGlyph(block),
			StyleBold.Render(block.StartTime),
			StyleDim.Render("→"),
			StyleBold.Render(block.EndTime),
			label,
		)
	}
	return b.String()
}

// FormatBalance renders scheduled versus completed minutes per life domain.
func FormatBalance(balance []scheduler.DomainMinutes) string {
	var b strings.Builder
	b.WriteString(Header("Balance"))
	b.WriteString("\n")

	headers := []string{"Domain", "Scheduled", "Done"}
	rows := make([][]string, 0, len(balance))
	for _, d := range balance {
		rows = append(rows, []string{
			DomainStyle(d.Domain).Render(string(d.Domain)),
			fmt.Sprintf("%dm", d.ScheduledMin),
			fmt.Sprintf("%dm", d.CompletedMin),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatReplanResult summarizes a plan or replan outcome.
func FormatReplanResult(resp *contract.ReplanResponse) string {
	var b strings.Builder
	if resp.Degraded {
		b.WriteString(StyleYellow.Render("⚠ The planner was unreachable."))
		b.WriteString("\n")
		b.WriteString(wrapIndent(resp.Explanation, "  "))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StyleGreen.Render("✓ Plan updated."))
	b.WriteString(" ")
	b.WriteString(Dim(fmt.Sprintf("%d blocks kept, %d new", resp.PastBlocks, resp.NewBlocks)))
	b.WriteString("\n")
	if resp.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(wrapIndent(resp.Explanation, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatDebrief renders the close-of-day summary.
func FormatDebrief(date, text string) string {
	var b strings.Builder
	b.WriteString(Header("Debrief " + date))
	b.WriteString("\n")
	b.WriteString(wrapIndent(text, "  "))
	b.WriteString("\n")
	return b.String()
}

// shortID abbreviates a uuid for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// wrapIndent word-wraps text to 76 columns with a left indent.
func wrapIndent(text, indent string) string {
	const width = 76
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent
	}

	var b strings.Builder
	lineLen := 0
	b.WriteString(indent)
	for i, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > width {
			b.WriteString("\n")
			b.WriteString(indent)
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
