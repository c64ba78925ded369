package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/daybreak/internal/app"
	"github.com/alexanderramin/daybreak/internal/clock"
	"github.com/alexanderramin/daybreak/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Days     service.DayService
	Schedule service.ScheduleService
	Plans    service.PlanService
	Chat     service.ChatService
	Debriefs service.DebriefService
	Clock    clock.Clock

	// Narrow use-case overrides; when unset, commands fall back to the
	// wide service interfaces above.
	Day    app.DayUseCase
	Toggle app.ToggleTaskUseCase
	Plan   app.PlanUseCase

	// IsInteractive reports whether stdin is a terminal; forms and the
	// chat loop require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "daybreak" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "daybreak",
		Short: "Daily planner with an adaptive schedule",
	}

	root.AddCommand(
		newTodayCmd(app),
		newTaskCmd(app),
		newPlanCmd(app),
		newReplanCmd(app),
		newUndoCmd(app),
		newChatCmd(app),
		newDistractCmd(app),
		newDebriefCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}

func interactive(app *App) bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// resolveDate maps an optional positional date argument to a concrete day.
func resolveDate(app *App, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if app.Clock != nil {
		return app.Clock.Today()
	}
	return clock.SystemClock{}.Today()
}
