package store

import "errors"

// ErrBindingNotFound is returned when a user has no stored binding
var ErrBindingNotFound = errors.New("telegram binding not found")

// Binding is a decrypted Telegram binding
type Binding struct {
	TelegramUserID int64
	Username       string
	UserID         int64
	ChatID         int64
}

// BindingsStore abstracts Telegram binding persistence
type BindingsStore interface {
	// FetchBindingForUser returns the user's binding, decrypted.
	// Returns ErrBindingNotFound when the user was never bound.
	FetchBindingForUser(userID int64) (*Binding, error)

	// UpsertBinding inserts the binding or, when a row for the same
	// Telegram user already exists, overwrites it (last write wins).
	UpsertBinding(binding Binding) error
}
