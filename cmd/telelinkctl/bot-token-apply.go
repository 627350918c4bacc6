package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"telelink/pkg/crypt"
	"telelink/pkg/db"
	"telelink/pkg/server/store"
	gormstore "telelink/pkg/server/store/gorm"
)

// botTokenApplyCmd represents the bot-token > apply command
var botTokenApplyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Encrypt and store a bot token from a file",
	Long: `Encrypt and store a Telegram bot token read from a file.

Without --user the token becomes the shared default bot. With --user it
becomes that user's dedicated bot. With --watch the command keeps running
and re-applies the token whenever the file changes.

Example:
  telelinkctl bot-token apply /run/telelink/bot_token
  telelinkctl bot-token apply /run/telelink/bot_token --user 42 --watch`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		var userID *int64
		if cmd.Flags().Changed("user") {
			id, _ := cmd.Flags().GetInt64("user")
			userID = &id
		}
		watch, _ := cmd.Flags().GetBool("watch")

		if err := applyBotToken(filename, userID, watch); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to apply bot token: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	botTokenCmd.AddCommand(botTokenApplyCmd)

	botTokenApplyCmd.Flags().Int64("user", 0, "store as this user's dedicated bot instead of the shared default")
	botTokenApplyCmd.Flags().Bool("watch", false, "keep running and re-apply the token when the file changes")
}

func applyBotToken(filename string, userID *int64, watch bool) error {
	dataKeyB64, ok := os.LookupEnv("TELELINK_DATA_KEY")
	if !ok {
		return fmt.Errorf("TELELINK_DATA_KEY environment variable is required")
	}

	dataKey, err := base64.StdEncoding.DecodeString(dataKeyB64)
	if err != nil {
		return fmt.Errorf("failed to decode TELELINK_DATA_KEY: %w", err)
	}

	cipher, err := crypt.NewSymmetric(dataKey)
	if err != nil {
		return fmt.Errorf("failed to create cipher: %w", err)
	}

	database, err := db.Connect(db.Config{Cipher: cipher})
	if err != nil {
		return err
	}
	bots := gormstore.NewBotsStore(database)

	if err := storeTokenFromFile(bots, filename, userID); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for token changes\n", filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, re-applying token...\n", time.Now().Format(time.RFC3339))
				if err := storeTokenFromFile(bots, filename, userID); err != nil {
					fmt.Fprintf(os.Stderr, "Error applying token: %v\n", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func storeTokenFromFile(bots store.BotsStore, filename string, userID *int64) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read token file: %w", err)
	}

	token := strings.TrimSpace(string(content))
	if token == "" {
		return fmt.Errorf("token file %s is empty", filename)
	}

	if err := bots.UpsertBot(userID, token); err != nil {
		return err
	}
	fmt.Println("Bot token stored")
	return nil
}
