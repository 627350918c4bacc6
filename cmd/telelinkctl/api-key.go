package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// apiKeyCmd represents the api-key command
var apiKeyCmd = &cobra.Command{
	Use:   "api-key",
	Short: "Manage premium API keys",
	Long:  `Manage premium API keys`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'api-key' requires a subcommand (create)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(apiKeyCmd)
}
