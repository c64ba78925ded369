package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today [date]",
		Short: "Show the day's tasks and schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.dayUseCase().GetDay(context.Background(), resolveDate(app, args))
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDay(view))
			return nil
		},
	}
}
