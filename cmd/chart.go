package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/views"
)

var chartMood string

const chartBarWidth = 30

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Mood frequency bar chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		db, entries, moods, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		counts := views.MoodCounts(entries.All(), moods.All())

		max := 0
		for _, c := range counts {
			if c.Count > max {
				max = c.Count
			}
		}

		for _, c := range counts {
			width := 0
			if max > 0 {
				width = c.Count * chartBarWidth / max
			}
			bar := strings.Repeat("█", width)

			style := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + c.Mood.Color))
			// selecting a mood fades the others, it does not hide them
			if chartMood != "" && c.Mood.Name != chartMood {
				style = style.Faint(true)
			}

			fmt.Printf("%-12s %s %d\n", c.Mood.Name, style.Render(bar), c.Count)
		}
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartMood, "mood", "m", "", "Highlight one mood, fade the rest")
}
