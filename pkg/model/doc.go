// Package model defines the database models for telelink.
//
// # Core Models
//
//   - PremiumAPIKey: API keys with entitlement sets, provisioned out-of-band
//   - TelegramUser: the persisted binding between an account and a Telegram
//     chat; Telegram identifiers are encrypted at rest
//   - TelegramBot: bot credentials with the persisted update cursor
//
// Encrypted columns are handled by gorm hooks. The hooks read the symmetric
// cipher from the connection's context (see pkg/db.Connect), so decryption
// is transparent to the store layer and no plaintext Telegram identifier or
// bot token ever reaches the database.
//
// # Database Schema
//
//   - premium_api_keys: api_key (PK), user_id, entitlements (jsonb), is_active
//   - telegram_users: telegram_user_hash (PK), telegram_user_id, username,
//     user_id, chat_id
//   - telegram_bots: id (PK), user_id (nullable, unique), bot_token,
//     update_cursor
package model
