package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/utils"
	"github.com/ramanasai/moodlog/internal/views"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries as formatted text",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		db, entries, _, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Location = loc
		renderConfig.Format = utils.OutputFormat(exportFormat)

		out, err := utils.NewRenderer(renderConfig).RenderEntryList(&utils.EntryList{
			Entries: views.Timeline(entries.All(), views.Filter{}, loc),
		})
		if err != nil {
			return err
		}

		if exportOut == "" {
			fmt.Print(out)
			return nil
		}
		if err := os.WriteFile(exportOut, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}
		fmt.Printf("Exported %d entries to %s\n", entries.Len(), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "markdown", "Output format: plain|table|json|markdown")
}
