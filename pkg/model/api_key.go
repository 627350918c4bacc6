package model

import (
	"crypto/rand"
	"database/sql/driver"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Entitlements is the structured entitlement set stored alongside an API
// key. Stored as jsonb.
type Entitlements struct {
	Plugins []string `json:"plugins"`
}

// HasPlugin reports whether the named plugin is enabled for this key.
func (e Entitlements) HasPlugin(name string) bool {
	for _, p := range e.Plugins {
		if p == name {
			return true
		}
	}
	return false
}

// Value emits the jsonb text. It must be a string: over the simple
// protocol connection a []byte arg is quoted as a bytea hex literal,
// which the jsonb input rejects.
func (e Entitlements) Value() (driver.Value, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (e *Entitlements) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*e = Entitlements{}
		return nil
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	default:
		return fmt.Errorf("unsupported entitlements column type %T", value)
	}
}

// PremiumAPIKey is a provisioned API key. Read-only to the service; rows
// are created by the CLI or out-of-band tooling.
type PremiumAPIKey struct {
	APIKey       string       `gorm:"column:api_key;primaryKey"`
	UserID       int64        `gorm:"column:user_id"`
	Entitlements Entitlements `gorm:"column:entitlements;type:jsonb"`
	IsActive     bool         `gorm:"column:is_active"`
}

func (PremiumAPIKey) TableName() string {
	return "premium_api_keys"
}

// GenerateAPIKey creates a new random opaque API key.
func GenerateAPIKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
