package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/domain"
)

// daybreakHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func daybreakHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// taskFormValues carries the string-typed state a huh task form edits.
type taskFormValues struct {
	Title     string
	Duration  string
	Priority  string
	Energy    string
	Domain    string
	FixedTime string
}

// taskEntryForm builds the interactive form for adding a task.
func taskEntryForm(v *taskFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("Write project report").
				Value(&v.Title).
				Validate(validateRequired),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("60").
				Value(&v.Duration).
				Validate(validatePositiveInt),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Normal", string(domain.PriorityNormal)),
					huh.NewOption("High", string(domain.PriorityHigh)),
					huh.NewOption("Non-negotiable", string(domain.PriorityNonNegotiable)),
				).
				Value(&v.Priority),
			huh.NewSelect[string]().
				Title("Energy needed").
				Options(
					huh.NewOption("Medium", string(domain.EnergyMedium)),
					huh.NewOption("High", string(domain.EnergyHigh)),
					huh.NewOption("Low", string(domain.EnergyLow)),
				).
				Value(&v.Energy),
			huh.NewSelect[string]().
				Title("Life domain").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption("Academic", string(domain.DomainAcademic)),
					huh.NewOption("Skill", string(domain.DomainSkill)),
					huh.NewOption("Health", string(domain.DomainHealth)),
					huh.NewOption("Spirituality", string(domain.DomainSpirituality)),
					huh.NewOption("Routine", string(domain.DomainRoutine)),
				).
				Value(&v.Domain),
			huh.NewInput().
				Title("Fixed time (HH:MM, blank if flexible)").
				Placeholder("14:00").
				Value(&v.FixedTime).
				Validate(validateOptionalClock),
		),
	).WithTheme(daybreakHuhTheme()).WithShowHelp(false)
}

// toTask converts collected form values into a domain task.
func (v taskFormValues) toTask() domain.Task {
	duration, _ := strconv.Atoi(v.Duration)
	return domain.Task{
		Title:           strings.TrimSpace(v.Title),
		DurationMinutes: duration,
		IsFixed:         v.FixedTime != "",
		FixedTime:       v.FixedTime,
		Priority:        domain.Priority(v.Priority),
		EnergyLevel:     domain.EnergyLevel(v.Energy),
		Domain:          domain.LifeDomain(v.Domain),
	}
}

// confirmForm builds a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(daybreakHuhTheme()).WithShowHelp(false)
}

// validateRequired rejects blank input.
func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

// validatePositiveInt accepts a positive integer.
func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalClock accepts empty or a strict HH:MM time.
func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseClock(s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
