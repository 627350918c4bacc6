package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"telelink/pkg/db"
	"telelink/pkg/model"
)

// apiKeyCreateCmd represents the api-key > create command
var apiKeyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Provision a premium API key for a user",
	Long: `Provision a premium API key for a user.

The generated key is printed to stdout and cannot be retrieved later.

Example:
  telelinkctl api-key create --user 42 --plugins telegram,email`,
	Run: func(cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetInt64("user")
		plugins, _ := cmd.Flags().GetStringSlice("plugins")

		apiKey, err := createAPIKey(userID, plugins)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to create API key:", err)
			os.Exit(1)
		}
		fmt.Println(apiKey)
	},
}

func init() {
	apiKeyCmd.AddCommand(apiKeyCreateCmd)

	apiKeyCreateCmd.Flags().Int64("user", 0, "internal user id the key belongs to")
	apiKeyCreateCmd.Flags().StringSlice("plugins", []string{"telegram"}, "plugins enabled for this key")
	_ = apiKeyCreateCmd.MarkFlagRequired("user")
}

func createAPIKey(userID int64, plugins []string) (string, error) {
	// API keys are opaque random strings, not encrypted columns, so no
	// cipher is needed here.
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	apiKey, err := model.GenerateAPIKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}

	record := model.PremiumAPIKey{
		APIKey:       apiKey,
		UserID:       userID,
		Entitlements: model.Entitlements{Plugins: plugins},
		IsActive:     true,
	}
	if err := database.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store key: %w", err)
	}
	return apiKey, nil
}
