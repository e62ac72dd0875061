package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dryleaf/dryleaf/internal/ai"
	"github.com/dryleaf/dryleaf/internal/scheduler"
	"github.com/dryleaf/dryleaf/internal/storage"
	"github.com/dryleaf/dryleaf/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dryleaf failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	tasks, err := store.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	subjects, err := store.LoadSubjects(ctx)
	if err != nil {
		return fmt.Errorf("load subjects: %w", err)
	}
	settings, err := store.LoadSettings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	client := ai.New(cfg.GeminiAPIKey)
	client.Model = cfg.GeminiModel

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	m := update.NewModelWithRuntime(store, client, engine, cfg)
	m.LoadSnapshots(tasks, subjects, settings)

	// Pending deadlines re-arm on every start; the engine holds no state of
	// its own across runs.
	now := time.Now()
	for _, t := range tasks {
		if t.Deadline != nil && !t.Completed && t.Deadline.After(now) {
			_ = engine.Schedule(scheduler.DeadlineEvent{TaskID: t.ID, Text: t.Text, DueAt: *t.Deadline})
		}
	}

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
