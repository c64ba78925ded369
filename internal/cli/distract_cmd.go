package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
)

func newDistractCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "distract <what happened>",
		Short: "Log a distraction for honest debriefing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = resolveDate(app, nil)
			}
			rec, err := app.dayUseCase().AddDistraction(context.Background(), date, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleYellow.Render("· Noted."),
				formatter.Dim(fmt.Sprintf("%d distractions so far today", len(rec.Distractions))),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to log against (YYYY-MM-DD, default today)")
	return cmd
}

func newDebriefCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "debrief [date]",
		Short: "Summarize how the day went",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := resolveDate(app, args)

			stop := formatter.StartSpinner("Looking back over the day...")
			text, err := app.Debriefs.DebriefDay(context.Background(), date)
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDebrief(date, text))
			return nil
		},
	}
}
