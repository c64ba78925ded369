package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityBadge returns a colored priority marker such as "! must".
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityNonNegotiable:
		return StyleRed.Render("! must")
	case domain.PriorityHigh:
		return StyleYellow.Render("▲ high")
	default:
		return StyleDim.Render("· norm")
	}
}

// BlockGlyph returns the schedule marker for a block's type and state.
func BlockGlyph(b domain.TimeBlock) string {
	if b.IsCompleted {
		return StyleGreen.Render("✓")
	}
	switch b.Type {
	case domain.BlockBreak:
		return StyleBlue.Render("○")
	case domain.BlockFixed:
		return StylePurple.Render("◆")
	case domain.BlockRoutine:
		return StyleDim.Render("·")
	default:
		return StyleYellow.Render("●")
	}
}

// DomainStyle colors a life-domain tag.
func DomainStyle(d domain.LifeDomain) lipgloss.Style {
	switch d {
	case domain.DomainAcademic:
		return StyleBlue
	case domain.DomainSkill:
		return StyleYellow
	case domain.DomainHealth:
		return StyleGreen
	case domain.DomainSpirituality:
		return StylePurple
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
