package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/journal"
)

var logMood string

var logCmd = &cobra.Command{
	Use:   "log [text]",
	Short: "Add a journal entry",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := journal.NewEntry(logMood, strings.Join(args, " "))
		if !entry.Valid() {
			// empty mood or text: silently discarded, no error
			return nil
		}

		cfg, _ := config.Load()
		db, entries, _, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		entries.Add(entry)
		if err := entries.Save(); err != nil {
			return err
		}
		fmt.Println("Saved.")
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&logMood, "mood", "m", "", "Mood name (e.g. Happy, Calm)")
}
