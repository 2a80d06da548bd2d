package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/store"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the stored API key",
}

var keySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store an API key (sealed at rest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			fmt.Print("API key: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				key = scanner.Text()
			}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("no key given")
		}

		cfg, _ := config.Load()
		db, err := store.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.SetAPIKey(key); err != nil {
			return err
		}
		fmt.Println("Saved.")
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		db, err := store.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.ClearAPIKey(); err != nil {
			return err
		}
		fmt.Println("Cleared.")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd, keyClearCmd)
}
