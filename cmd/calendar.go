package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/genai"
	"github.com/ramanasai/moodlog/internal/journal"
	"github.com/ramanasai/moodlog/internal/utils"
	"github.com/ramanasai/moodlog/internal/views"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Month calendar with per-day mood dots",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		ref := time.Now().In(loc)
		if calendarMonth != "" {
			m, err := utils.ParseMonth(calendarMonth, loc)
			if err != nil {
				return err
			}
			ref = m
		}

		db, entries, moods, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		days := views.CalendarMonth(entries.All(), ref, loc)

		fmt.Println(ref.Format("January 2006"))
		fmt.Println(calHeader())

		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		offset := int(first.Weekday()) // Sunday == 0
		cells := make([]string, 0, offset+len(days))
		for i := 0; i < offset; i++ {
			cells = append(cells, strings.Repeat(" ", calCellWidth))
		}
		for _, d := range days {
			cells = append(cells, renderCalCell(d, dotColors(moods.All(), d.Moods)))
		}
		for i := 0; i < len(cells); i += 7 {
			end := i + 7
			if end > len(cells) {
				end = len(cells)
			}
			fmt.Println(strings.TrimRight(strings.Join(cells[i:end], ""), " "))
		}

		// captions for mixture days, generated lazily and cached per day
		cache := genai.NewSummaryCache(resolveGenerator(cfg, db), nil)
		for _, d := range days {
			if !d.Mixture() {
				continue
			}
			caption := cache.Fill(cmd.Context(), d.Date, d.Moods, d.EntryCount)
			fmt.Printf("\n%s — %s", d.Date, caption)
		}
		fmt.Println()
		return nil
	},
}

const calCellWidth = 7 // "NN" + up to 3 dots + padding

func calHeader() string {
	names := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n + strings.Repeat(" ", calCellWidth-len(n)))
	}
	return strings.TrimRight(b.String(), " ")
}

// renderCalCell renders one day cell: the day number plus one colored dot
// per unique mood (capped upstream at views.MaxDots).
func renderCalCell(d views.CalendarDay, colors []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%2d", d.Day)
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#" + c)).Render("•"))
	}
	b.WriteString(strings.Repeat(" ", calCellWidth-2-len(colors)))
	return b.String()
}

// dotColors maps the day's mood names to registry colors, skipping dangling
// names.
func dotColors(moods []journal.Mood, names []string) []string {
	var out []string
	for _, name := range names {
		for _, m := range moods {
			if m.Name == name {
				out = append(out, m.Color)
				break
			}
		}
	}
	return out
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "M", "", "Month to show (YYYY-MM)")
}
