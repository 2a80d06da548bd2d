package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/journal"
)

var moodColor string

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List and manage moods",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		db, _, moods, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		for _, m := range moods.All() {
			kind := "custom"
			if journal.IsBuiltIn(m.Name) {
				kind = "built-in"
			}
			fmt.Printf("%-12s #%s  %-8s %s\n", m.Name, m.Color, m.Icon, kind)
		}
		return nil
	},
}

var moodsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom mood (or recolor an existing one)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !journal.ValidColor(moodColor) {
			return fmt.Errorf("invalid color %q: want 6 hex digits", moodColor)
		}

		cfg, _ := config.Load()
		db, _, moods, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		moods.Add(args[0], moodColor)
		if err := moods.Save(); err != nil {
			return err
		}
		fmt.Println("Saved.")
		return nil
	},
}

var moodsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a custom mood (built-ins are protected)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if journal.IsBuiltIn(args[0]) {
			fmt.Printf("%s is built-in and can't be removed.\n", args[0])
			return nil
		}

		cfg, _ := config.Load()
		db, _, moods, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		before := moods.Len()
		moods.Remove(args[0])
		if err := moods.Save(); err != nil {
			return err
		}
		if moods.Len() == before {
			fmt.Println("No such mood.")
		} else {
			fmt.Println("Removed.")
		}
		return nil
	},
}

func init() {
	moodsAddCmd.Flags().StringVarP(&moodColor, "color", "c", "cba6f7", "6-hex-digit color")
	moodsCmd.AddCommand(moodsAddCmd, moodsRemoveCmd)
}
