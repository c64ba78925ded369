package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/contract"
	"github.com/alexanderramin/daybreak/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the day's task list",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskDoneCmd(app),
		newTaskListCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		date      string
		duration  int
		priority  string
		energy    string
		lifeArea  string
		fixedTime string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task to a day",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if date == "" {
				date = resolveDate(app, nil)
			}

			task := domain.Task{
				Title:           strings.Join(args, " "),
				DurationMinutes: duration,
				IsFixed:         fixedTime != "",
				FixedTime:       fixedTime,
				Priority:        domain.Priority(priority),
				EnergyLevel:     domain.EnergyLevel(energy),
				Domain:          domain.LifeDomain(lifeArea),
			}

			// With no title on the command line, fall back to the form.
			if task.Title == "" {
				if !interactive(app) {
					return fmt.Errorf("give a task title or run interactively")
				}
				values := taskFormValues{
					Duration: "60",
					Priority: string(domain.PriorityNormal),
					Energy:   string(domain.EnergyMedium),
				}
				if err := taskEntryForm(&values).Run(); err != nil {
					return err
				}
				task = values.toTask()
			}

			// Entry-time rule: one non-negotiable task per day keeps the
			// label meaningful.
			if task.Priority == domain.PriorityNonNegotiable {
				view, err := app.dayUseCase().GetDay(ctx, date)
				if err != nil {
					return err
				}
				for _, existing := range view.Record.Tasks {
					if existing.Priority == domain.PriorityNonNegotiable {
						return fmt.Errorf("%q is already non-negotiable today; demote it first", existing.Title)
					}
				}
			}

			rec, err := app.dayUseCase().AddTask(ctx, contract.AddTaskRequest{Date: date, Task: task})
			if err != nil {
				return err
			}

			added := rec.Tasks[len(rec.Tasks)-1]
			fmt.Printf("%s %s %s\n",
				formatter.StyleGreen.Render("✓ Added"),
				formatter.Bold(added.Title),
				formatter.Dim(fmt.Sprintf("(%d min, %s)", added.DurationMinutes, added.Priority)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to add to (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&duration, "min", 60, "Estimated duration in minutes")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityNormal), "Priority (normal|high|non_negotiable)")
	cmd.Flags().StringVar(&energy, "energy", string(domain.EnergyMedium), "Energy needed (low|medium|high)")
	cmd.Flags().StringVar(&lifeArea, "domain", "", "Life domain (Academic|Skill|Health|Spirituality|Routine)")
	cmd.Flags().StringVar(&fixedTime, "at", "", "Fixed start time (HH:MM) for appointments")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done <task>",
		Short: "Toggle a task's completion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if date == "" {
				date = resolveDate(app, nil)
			}

			view, err := app.dayUseCase().GetDay(ctx, date)
			if err != nil {
				return err
			}
			task, err := resolveTask(view.Record.Tasks, strings.Join(args, " "))
			if err != nil {
				return err
			}

			resp, err := app.toggleTaskUseCase().ToggleTask(ctx, contract.ToggleTaskRequest{Date: date, TaskID: task.ID})
			if err != nil {
				return err
			}
			if !resp.Found {
				return fmt.Errorf("task %q no longer exists", task.Title)
			}

			updated, _ := resolveTask(resp.Record.Tasks, task.ID)
			if updated != nil && updated.Completed {
				fmt.Printf("%s %s\n", formatter.StyleGreen.Render("✓ Done:"), formatter.Bold(task.Title))
			} else {
				fmt.Printf("%s %s\n", formatter.StyleYellow.Render("↺ Reopened:"), formatter.Bold(task.Title))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to update (YYYY-MM-DD, default today)")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [date]",
		Short: "List a day's tasks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.dayUseCase().GetDay(context.Background(), resolveDate(app, args))
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTasks(view.Record.Tasks))
			return nil
		},
	}
}
