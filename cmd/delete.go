package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <timestamp>",
	Short: "Delete the entry with the given timestamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", args[0], err)
		}

		cfg, _ := config.Load()
		db, entries, _, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		before := entries.Len()
		entries.Remove(ts)
		if err := entries.Save(); err != nil {
			return err
		}
		if entries.Len() == before {
			fmt.Println("No entry with that timestamp.")
		} else {
			fmt.Println("Deleted.")
		}
		return nil
	},
}
