package store

import (
	"errors"

	"telelink/pkg/model"
)

// ErrAPIKeyInvalid is returned when no active record matches an API key
var ErrAPIKeyInvalid = errors.New("invalid API key")

// ErrStoreUnavailable wraps database connectivity and query failures
var ErrStoreUnavailable = errors.New("store unavailable")

// Identity is the validated owner of an API key
type Identity struct {
	UserID       int64
	Entitlements model.Entitlements
}

// CredentialsStore abstracts API key validation
type CredentialsStore interface {
	// ValidateAPIKey looks up the unique active record matching the key.
	// Returns ErrAPIKeyInvalid when no active record matches and a
	// wrapped ErrStoreUnavailable when the query itself fails.
	ValidateAPIKey(apiKey string) (*Identity, error)
}
