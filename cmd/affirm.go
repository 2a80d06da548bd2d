package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/genai"
	"github.com/ramanasai/moodlog/internal/views"
)

var affirmCmd = &cobra.Command{
	Use:   "affirm",
	Short: "An affirmation for today's dominant mood",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		db, entries, moods, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		mood, ok := views.DominantMood(entries.All(), moods.All(), cfg.Location())
		if !ok {
			mood = "reflective"
		}

		// silent fallback on any failure, never an error
		text := genai.Affirmation(cmd.Context(), resolveGenerator(cfg, db), mood, nil)
		fmt.Println(text)
		return nil
	},
}
