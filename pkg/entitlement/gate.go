// Package entitlement gates API keys on plugin entitlements.
package entitlement

import (
	"errors"

	"telelink/pkg/server/store"
)

// ErrNotEntitled is returned when a valid key lacks the required plugin
var ErrNotEntitled = errors.New("plugin not entitled for this API key")

// Gate wraps credential validation with a plugin authorization check.
type Gate struct {
	credentials    store.CredentialsStore
	requiredPlugin string
}

// NewGate creates a Gate requiring the given plugin name.
func NewGate(credentials store.CredentialsStore, requiredPlugin string) *Gate {
	return &Gate{
		credentials:    credentials,
		requiredPlugin: requiredPlugin,
	}
}

// Check validates the API key and verifies the required plugin is enabled.
// Credential store failures propagate unchanged; a valid key without the
// plugin fails with ErrNotEntitled. The read always hits the database so
// the decision reflects current state.
func (g *Gate) Check(apiKey string) (*store.Identity, error) {
	identity, err := g.credentials.ValidateAPIKey(apiKey)
	if err != nil {
		return nil, err
	}

	if !identity.Entitlements.HasPlugin(g.requiredPlugin) {
		return nil, ErrNotEntitled
	}

	return identity, nil
}
