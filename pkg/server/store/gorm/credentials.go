package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"telelink/pkg/model"
	"telelink/pkg/server/store"
)

// Ensure CredentialsStore implements store.CredentialsStore
var _ store.CredentialsStore = (*CredentialsStore)(nil)

// CredentialsStore implements store.CredentialsStore using GORM
type CredentialsStore struct {
	db *gorm.DB
}

// NewCredentialsStore creates a new CredentialsStore
func NewCredentialsStore(db *gorm.DB) *CredentialsStore {
	return &CredentialsStore{db: db}
}

// ValidateAPIKey looks up the unique active record matching the key.
func (s *CredentialsStore) ValidateAPIKey(apiKey string) (*store.Identity, error) {
	var record model.PremiumAPIKey
	tx := s.db.Where("api_key = ? AND is_active = ?", apiKey, true).First(&record)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrAPIKeyInvalid
		}
		return nil, fmt.Errorf("%w: %v", store.ErrStoreUnavailable, tx.Error)
	}

	return &store.Identity{
		UserID:       record.UserID,
		Entitlements: record.Entitlements,
	}, nil
}
