package store

import "errors"

// ErrBotNotConfigured is returned when no bot credential row exists
var ErrBotNotConfigured = errors.New("no telegram bot configured")

// Bot is a decrypted bot credential
type Bot struct {
	ID           int64
	UserID       *int64
	Token        string
	UpdateCursor int64
}

// BotsStore abstracts bot credential persistence
type BotsStore interface {
	// FetchBotForUser returns the user's dedicated bot when one exists,
	// falling back to the shared default bot. Returns ErrBotNotConfigured
	// when neither row exists.
	FetchBotForUser(userID int64) (*Bot, error)

	// UpsertBot stores a bot credential, replacing the existing row for
	// the same scope (user or default).
	UpsertBot(userID *int64, token string) error

	// AdvanceCursor records the id of the last consumed update so later
	// polls skip it. The cursor never moves backwards.
	AdvanceCursor(botID, updateID int64) error
}
