package gorm

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"telelink/pkg/model"
	"telelink/pkg/server/store"
)

// Ensure BindingsStore implements store.BindingsStore
var _ store.BindingsStore = (*BindingsStore)(nil)

// BindingsStore implements store.BindingsStore using GORM
type BindingsStore struct {
	db *gorm.DB
}

// NewBindingsStore creates a new BindingsStore
func NewBindingsStore(db *gorm.DB) *BindingsStore {
	return &BindingsStore{db: db}
}

// FetchBindingForUser returns the user's binding, decrypted by the model
// hooks. Returns store.ErrBindingNotFound when the user was never bound.
func (s *BindingsStore) FetchBindingForUser(userID int64) (*store.Binding, error) {
	var record model.TelegramUser
	tx := s.db.Where("user_id = ?", userID).Order("updated_at desc").First(&record)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrBindingNotFound
		}
		return nil, fmt.Errorf("%w: %v", store.ErrStoreUnavailable, tx.Error)
	}

	telegramUserID, err := strconv.ParseInt(record.TelegramUserID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt telegram_user_id for user_id=%d: %w", userID, err)
	}
	chatID, err := strconv.ParseInt(record.ChatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt chat_id for user_id=%d: %w", userID, err)
	}

	return &store.Binding{
		TelegramUserID: telegramUserID,
		Username:       record.Username,
		UserID:         record.UserID,
		ChatID:         chatID,
	}, nil
}

// UpsertBinding inserts the binding, or overwrites the row for the same
// Telegram user. Last write wins on the hash key.
func (s *BindingsStore) UpsertBinding(binding store.Binding) error {
	record := model.TelegramUser{
		TelegramUserHash: model.HashTelegramUserID(binding.TelegramUserID),
		TelegramUserID:   strconv.FormatInt(binding.TelegramUserID, 10),
		Username:         binding.Username,
		UserID:           binding.UserID,
		ChatID:           strconv.FormatInt(binding.ChatID, 10),
	}

	tx := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "telegram_user_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"telegram_user_id", "username", "user_id", "chat_id", "updated_at",
		}),
	}).Create(&record)
	if tx.Error != nil {
		return fmt.Errorf("%w: %v", store.ErrStoreUnavailable, tx.Error)
	}
	return nil
}
