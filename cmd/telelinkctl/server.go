package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"telelink/pkg/config"
	"telelink/pkg/crypt"
	"telelink/pkg/db"
	"telelink/pkg/entitlement"
	"telelink/pkg/linker"
	"telelink/pkg/server"
	"telelink/pkg/server/endpoints"
	gormstore "telelink/pkg/server/store/gorm"
	"telelink/pkg/telegram"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the telelink application server",
	Long: `Run the telelink application server

To run the server requires the environment variables TELELINK_DATA_KEY and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		dataKeyB64, ok := os.LookupEnv("TELELINK_DATA_KEY")
		if !ok {
			fmt.Fprintln(os.Stderr, "TELELINK_DATA_KEY environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		dataKey, err := base64.StdEncoding.DecodeString(dataKeyB64)
		if err != nil {
			fmt.Println("Bad TELELINK_DATA_KEY:", err)
			os.Exit(1)
		}

		cipher, err := crypt.NewSymmetric(dataKey)
		if err != nil {
			fmt.Println("Unable to initiate cipher:", err)
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Println("Bad configuration:", err)
			os.Exit(1)
		}
		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			cfg.BindAddress = host
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		database, err := db.Connect(db.Config{Cipher: cipher})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		credentials := gormstore.NewCredentialsStore(database)
		bindings := gormstore.NewBindingsStore(database)
		bots := gormstore.NewBotsStore(database)

		gate := entitlement.NewGate(credentials, cfg.RequiredPlugin)
		poller := telegram.NewBotPoller(cfg.PollWindow())
		resolver := linker.NewResolver(gate, bindings, bots, poller)

		s := server.NewServer(cipher, database, credentials, resolver, cfg)
		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", cfg.BindAddress, cfg.Port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (overrides config)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides config)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
