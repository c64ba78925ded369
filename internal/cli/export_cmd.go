package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/importer"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [date]",
		Short: "Write a day to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.dayUseCase().GetDay(context.Background(), resolveDate(app, args))
			if err != nil {
				return err
			}
			file := importer.FromRecord(view.Record)

			if outPath == "" {
				data, err := json.MarshalIndent(file, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding day: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if err := importer.WriteDayFile(outPath, file); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("✓ Exported"), formatter.Dim(outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination file (default stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace a day from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := importer.LoadDayFile(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateDayFile(file); len(errs) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleRed.Render("Import file has problems:"))
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", e)
				}
				return fmt.Errorf("%d validation errors", len(errs))
			}

			rec, err := app.dayUseCase().ImportDay(context.Background(), importer.ToRecord(file))
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("✓ Imported"),
				formatter.Dim(fmt.Sprintf("%s: %d tasks, %d blocks", rec.Date, len(rec.Tasks), len(rec.Schedule))),
			)
			return nil
		},
	}
}
