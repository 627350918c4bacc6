package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// botTokenCmd represents the bot-token command
var botTokenCmd = &cobra.Command{
	Use:   "bot-token",
	Short: "Manage Telegram bot tokens",
	Long:  `Manage Telegram bot tokens`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'bot-token' requires a subcommand (apply)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(botTokenCmd)
}
