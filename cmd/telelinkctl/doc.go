// Package main implements telelinkctl, the CLI for the telelink server.
//
// telelink validates premium API keys, checks plugin entitlements and links
// user accounts to Telegram chats by polling a bot's updates. Telegram
// identifiers are encrypted at rest.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: store interfaces and GORM implementations
//   - pkg/linker: the get-or-create linking workflow
//   - pkg/entitlement: plugin entitlement checks
//   - pkg/telegram: bot update polling
//   - pkg/crypt: symmetric encryption of Telegram identifiers
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Generate a data key for encryption
//	export TELELINK_DATA_KEY="$(telelinkctl data-key generate)"
//
//	# Run database migrations
//	export DATABASE_URL=postgres://...
//	telelinkctl db migrate
//
//	# Provision an API key and the default bot token
//	telelinkctl api-key create --user 42 --plugins telegram
//	telelinkctl bot-token apply /run/telelink/bot_token
//
//	# Run the server
//	telelinkctl server
package main
