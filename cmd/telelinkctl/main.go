package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"telelink/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "telelinkctl",
	Short: "Manage the telelink server",
	Long: `telelinkctl manages the telelink server: run it, migrate its database,
generate its data encryption key, and provision API keys and bot tokens.`,
}

func main() {
	logging.Init()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
