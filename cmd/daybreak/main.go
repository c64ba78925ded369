package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/daybreak/internal/cli"
	"github.com/alexanderramin/daybreak/internal/clock"
	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/intelligence"
	"github.com/alexanderramin/daybreak/internal/llm"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/service"
	"github.com/alexanderramin/daybreak/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.daybreak/daybreak.db
	dbPath := os.Getenv("DAYBREAK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".daybreak", "daybreak.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	repo := repository.NewSQLiteDayRecordRepo(database, logger)
	days := store.NewDayStore(context.Background(), repo, logger)
	clk := clock.SystemClock{}

	// Wire the model gateway (only when the LLM is enabled).
	var gateway intelligence.PlanService
	var llmClient llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
		gateway = intelligence.NewPlanService(llmClient)
	}

	app := &cli.App{
		Days:     service.NewDayService(days, clk),
		Schedule: service.NewScheduleService(days, clk),
		Plans:    service.NewPlanService(days, gateway, clk),
		Chat:     service.NewChatService(days, gateway, clk),
		Debriefs: service.NewDebriefService(days, intelligence.NewDebriefService(llmClient)),
		Clock:    clk,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
