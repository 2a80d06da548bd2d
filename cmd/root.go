package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/genai"
	"github.com/ramanasai/moodlog/internal/notify"
	"github.com/ramanasai/moodlog/internal/schedule"
	"github.com/ramanasai/moodlog/internal/store"
	"github.com/ramanasai/moodlog/internal/ui"
	"github.com/ramanasai/moodlog/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "moodlog",
	Short: "Mood journaling with charts, calendar and chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run()
	},
}

func Execute() error {
	rootCmd.Version = version.String()
	return rootCmd.Execute()
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("MOODLOG_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				schedule.RunConfigured(ctx, cfg, func() {
					title, msg := notify.FormatCheckIn(todayCount(cfg))
					_ = notify.Info(title, msg)
				})
			}()
			// signal cancels on process exit
			_ = cancel
		}
		return nil
	}

	rootCmd.AddCommand(
		logCmd, deleteCmd, listCmd, moodsCmd,
		chartCmd, calendarCmd, trendsCmd,
		affirmCmd, chatCmd, exportCmd, keyCmd, themeCmd, tuiCmd,
	)
}

// todayCount returns how many entries were logged today, best effort.
func todayCount(cfg config.Config) int {
	db, entries, _, err := openStores(cfg)
	if err != nil {
		return 0
	}
	defer db.Close()

	loc := cfg.Location()
	today := time.Now().In(loc).Format("2006-01-02")
	n := 0
	for _, e := range entries.All() {
		if e.Day(loc) == today {
			n++
		}
	}
	return n
}

// openStores opens the slot database and loads both snapshots.
func openStores(cfg config.Config) (*store.DB, *store.EntryStore, *store.MoodRegistry, error) {
	db, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := slog.Default()
	entries := store.NewEntryStore(db, logger)
	if err := entries.Load(); err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	moods := store.NewMoodRegistry(db, logger)
	if err := moods.Load(); err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	return db, entries, moods, nil
}

// resolveGenerator builds the Claude client from the first available
// credential: config/env, then the sealed API-key slot. Returns nil when no
// key is available; callers fall back or surface that per their contract.
func resolveGenerator(cfg config.Config, db *store.DB) genai.Generator {
	key := cfg.Claude.APIKey
	if key == "" {
		stored, err := db.APIKey()
		if err != nil {
			slog.Default().Warn("reading stored API key", "error", err)
		}
		key = stored
	}

	client, err := genai.NewClient(key, cfg.Claude.Model, slog.Default())
	if err != nil {
		return nil
	}
	return client
}
