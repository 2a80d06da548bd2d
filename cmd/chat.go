package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/genai"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat about how you're feeling",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		db, _, _, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		g := resolveGenerator(cfg, db)
		if g == nil {
			// chat is the one surface that tells the user about a missing key
			fmt.Println("No API key set. Run `moodlog key set` or export ANTHROPIC_API_KEY.")
			return nil
		}

		session := genai.NewChatSession(g)
		fmt.Println("Chat started. Empty line or Ctrl+D to quit.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				break
			}

			reply, err := session.Reply(cmd.Context(), text)
			if err != nil {
				if errors.Is(err, genai.ErrNoCredential) {
					fmt.Println("No API key set. Run `moodlog key set`.")
					return nil
				}
				// inline error, conversation continues
				fmt.Printf("(couldn't reach the service: %v)\n", err)
				continue
			}
			fmt.Println(reply.Text)
		}
		return scanner.Err()
	},
}
