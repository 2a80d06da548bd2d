package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/store"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		db, err := store.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer db.Close()

		theme := cfg.Theme
		if saved, err := db.Theme(); err == nil && saved != "" {
			theme = saved
		}
		colorTheme := cfg.ColorTheme
		if saved, err := db.ColorTheme(); err == nil && saved != "" {
			colorTheme = saved
		}
		fmt.Printf("theme: %s\ncolor theme: %s\n", theme, colorTheme)
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <dark|light>",
	Short: "Set the theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "dark" && args[0] != "light" {
			return fmt.Errorf("unknown theme %q: want dark or light", args[0])
		}
		cfg, _ := config.Load()
		db, err := store.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.SetTheme(args[0]); err != nil {
			return err
		}
		fmt.Println("Saved.")
		return nil
	},
}

var themeColorCmd = &cobra.Command{
	Use:   "color <mocha|latte>",
	Short: "Set the color theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "mocha" && args[0] != "latte" {
			return fmt.Errorf("unknown color theme %q: want mocha or latte", args[0])
		}
		cfg, _ := config.Load()
		db, err := store.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.SetColorTheme(args[0]); err != nil {
			return err
		}
		fmt.Println("Saved.")
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeSetCmd, themeColorCmd)
}
