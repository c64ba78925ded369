package cli

import "github.com/alexanderramin/daybreak/internal/app"

func (a *App) dayUseCase() app.DayUseCase {
	if a.Day != nil {
		return a.Day
	}
	return a.Days
}

func (a *App) toggleTaskUseCase() app.ToggleTaskUseCase {
	if a.Toggle != nil {
		return a.Toggle
	}
	return a.Schedule
}

func (a *App) planUseCase() app.PlanUseCase {
	if a.Plan != nil {
		return a.Plan
	}
	return a.Plans
}
