package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run()
	},
}
