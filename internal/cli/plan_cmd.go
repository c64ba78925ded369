package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/contract"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		date        string
		windowStart string
		windowEnd   string
		planContext string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a schedule for the day's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = resolveDate(app, nil)
			}

			req := contract.NewGenerateRequest(date)
			if windowStart != "" {
				req.WindowStart = windowStart
			}
			if windowEnd != "" {
				req.WindowEnd = windowEnd
			}
			req.Context = planContext

			stop := formatter.StartSpinner("Planning your day...")
			resp, err := app.planUseCase().Generate(context.Background(), req)
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatReplanResult(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to plan (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&windowStart, "from", "", "Window start (HH:MM, default 06:00)")
	cmd.Flags().StringVar(&windowEnd, "to", "", "Window end (HH:MM, default 23:59)")
	cmd.Flags().StringVar(&planContext, "context", "", "Extra context for the planner")

	return cmd
}

func newReplanCmd(app *App) *cobra.Command {
	var replanContext string

	cmd := &cobra.Command{
		Use:   "replan",
		Short: "Regenerate the rest of today, keeping what already happened",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Replanning the rest of today...")
			resp, err := app.planUseCase().Replan(context.Background(), contract.ReplanRequest{
				Date:    resolveDate(app, nil),
				Context: replanContext,
			})
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatReplanResult(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&replanContext, "context", "", "What changed (e.g. \"meeting ran long\")")
	return cmd
}

func newUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo [date]",
		Short: "Restore the schedule from before the last plan change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.planUseCase().Undo(context.Background(), resolveDate(app, args))
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("✓ Restored"),
				formatter.Dim(fmt.Sprintf("%s now has %d scheduled blocks", rec.Date, len(rec.Schedule))),
			)
			return nil
		},
	}
}
