package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/intelligence"
	"github.com/alexanderramin/daybreak/internal/scheduler"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Plan the day in conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(app) {
				return fmt.Errorf("chat needs an interactive terminal")
			}

			ctx := context.Background()
			fmt.Println(formatter.Header("Chat Planning"))
			fmt.Println(formatter.Dim("Describe your day. Type 'quit' to leave without changes."))
			fmt.Println()

			var conv []intelligence.ConversationTurn
			reader := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print(formatter.StyleHeader.Render("you> "))
				if !reader.Scan() {
					return nil
				}
				message := strings.TrimSpace(reader.Text())
				if message == "" {
					continue
				}
				if message == "quit" || message == "exit" {
					fmt.Println(formatter.Dim("Nothing changed."))
					return nil
				}

				stop := formatter.StartSpinner("Thinking...")
				result, err := app.Chat.Turn(ctx, conv, message)
				stop()
				if err != nil {
					fmt.Println(formatter.StyleYellow.Render("⚠ The planner did not answer: " + err.Error()))
					continue
				}

				conv = append(conv,
					intelligence.ConversationTurn{Role: "user", Content: message},
					intelligence.ConversationTurn{Role: "assistant", Content: result.RawText},
				)

				fmt.Println(wrapReply(result.Message))
				if result.Plan != nil {
					fmt.Println()
					fmt.Print(formatter.FormatSchedule(scheduler.SortByStart(result.Plan.Schedule)))
					fmt.Println()

					apply := false
					if err := confirmForm("Apply this plan to today?", &apply).Run(); err != nil {
						return err
					}
					if apply {
						rec, err := app.Chat.ApplyPlan(ctx, result.Plan)
						if err != nil {
							return err
						}
						fmt.Printf("%s %s\n",
							formatter.StyleGreen.Render("✓ Plan applied."),
							formatter.Dim(fmt.Sprintf("%d blocks on %s", len(rec.Schedule), rec.Date)),
						)
						return nil
					}
					fmt.Println(formatter.Dim("Kept talking instead. Tell me what to change."))
				}
			}
		},
	}
}

func wrapReply(message string) string {
	return formatter.StylePurple.Render("plan> ") + message
}
