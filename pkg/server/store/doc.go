// Package store provides storage abstractions for the telelink server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints and the link resolver to be decoupled from the specific
// database implementation. This enables easier testing with mocks.
//
// # Available Stores
//
//   - CredentialsStore: API key validation
//   - BindingsStore: Telegram binding lookup and upsert
//   - BotsStore: bot credential lookup and update-cursor persistence
//
// # Error taxonomy
//
// Stores fail with sentinel errors that the HTTP layer maps to statuses:
// ErrAPIKeyInvalid (401), ErrBindingNotFound / ErrBotNotConfigured (404),
// and ErrStoreUnavailable (503) which wraps connectivity or query failures.
//
//	identity, err := credsStore.ValidateAPIKey("k-123")
//	if errors.Is(err, store.ErrAPIKeyInvalid) {
//	    // bad or inactive key
//	}
package store
