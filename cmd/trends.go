package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/views"
)

var trendsCloud bool

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Trending words across all entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		db, entries, _, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if trendsCloud {
			words := views.Cloud(entries.All())
			if len(words) == 0 {
				fmt.Println("Nothing to show yet.")
				return nil
			}
			var parts []string
			for _, w := range words {
				style := lipgloss.NewStyle()
				if w.Size >= views.CloudMaxSize {
					style = style.Bold(true)
				} else if w.Size <= views.CloudMinSize {
					style = style.Faint(true)
				}
				parts = append(parts, style.Render(w.Word))
			}
			fmt.Println(strings.Join(parts, "  "))
			return nil
		}

		trending := views.Trending(entries.All())
		if len(trending) == 0 {
			fmt.Println("Nothing to show yet.")
			return nil
		}
		for i, w := range trending {
			fmt.Printf("%d. %-16s %d\n", i+1, w.Word, w.Count)
		}
		return nil
	},
}

func init() {
	trendsCmd.Flags().BoolVar(&trendsCloud, "cloud", false, "Show the weighted word cloud instead of the top 5")
}
