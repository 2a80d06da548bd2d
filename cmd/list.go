package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/utils"
	"github.com/ramanasai/moodlog/internal/views"
)

var (
	listMood   string
	listDate   string
	listFormat string
	listLimit  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries (timeline view)",
	Long: `Examples:
	moodlog list                          # everything, newest first
	moodlog list --mood Happy             # only Happy entries
	moodlog list --date yesterday         # only yesterday's entries
	moodlog list --format table --limit 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		db, entries, _, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		var filter views.Filter
		filter.Mood = listMood
		if listDate != "" {
			day, err := utils.ParseDay(listDate, loc)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", listDate, err)
			}
			filter.Date = day.Format("2006-01-02")
		}

		timeline := views.Timeline(entries.All(), filter, loc)
		if listLimit > 0 && len(timeline) > listLimit {
			timeline = timeline[:listLimit]
		}

		filters := map[string]string{}
		if filter.Mood != "" {
			filters["mood"] = filter.Mood
		}
		if filter.Date != "" {
			filters["date"] = filter.Date
		}

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Location = loc
		if listFormat != "" {
			renderConfig.Format = utils.OutputFormat(listFormat)
		}

		out, err := utils.NewRenderer(renderConfig).RenderEntryList(&utils.EntryList{
			Entries: timeline,
			Filters: filters,
		})
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listMood, "mood", "m", "", "Filter by mood name")
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "Filter by day (today, yesterday, YYYY-MM-DD)")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "Output format: plain|table|json|markdown")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Max entries to show (0 = all)")
}
