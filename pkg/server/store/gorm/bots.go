package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"telelink/pkg/model"
	"telelink/pkg/server/store"
)

// Ensure BotsStore implements store.BotsStore
var _ store.BotsStore = (*BotsStore)(nil)

// BotsStore implements store.BotsStore using GORM
type BotsStore struct {
	db *gorm.DB
}

// NewBotsStore creates a new BotsStore
func NewBotsStore(db *gorm.DB) *BotsStore {
	return &BotsStore{db: db}
}

// FetchBotForUser returns the user's dedicated bot when one exists, falling
// back to the shared default bot (user_id IS NULL).
func (s *BotsStore) FetchBotForUser(userID int64) (*store.Bot, error) {
	record, err := s.fetch(s.db.Where("user_id = ?", userID))
	if errors.Is(err, store.ErrBotNotConfigured) {
		record, err = s.fetch(s.db.Where("user_id IS NULL"))
	}
	if err != nil {
		return nil, err
	}

	return &store.Bot{
		ID:           record.ID,
		UserID:       record.UserID,
		Token:        record.BotToken,
		UpdateCursor: record.UpdateCursor,
	}, nil
}

func (s *BotsStore) fetch(tx *gorm.DB) (*model.TelegramBot, error) {
	var record model.TelegramBot
	if err := tx.First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrBotNotConfigured
		}
		return nil, fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
	}
	return &record, nil
}

// UpsertBot stores a bot credential, replacing the existing row for the
// same scope. Admin path: called from the CLI, not during requests.
func (s *BotsStore) UpsertBot(userID *int64, token string) error {
	scope := s.db.Where("user_id IS NULL")
	if userID != nil {
		scope = s.db.Where("user_id = ?", *userID)
	}

	// Plain struct dest keeps the decryption hook out of the way; the
	// existing token may be undecryptable and is being replaced anyway.
	var existing struct {
		ID           int64
		UpdateCursor int64
	}
	err := scope.Model(&model.TelegramBot{}).Select("id", "update_cursor").Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(&model.TelegramBot{UserID: userID, BotToken: token}).Error; err != nil {
			return fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
	}

	record := model.TelegramBot{
		ID:           existing.ID,
		UserID:       userID,
		BotToken:     token,
		UpdateCursor: existing.UpdateCursor,
	}
	if err := s.db.Save(&record).Error; err != nil {
		return fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
	}
	return nil
}

// AdvanceCursor records the id of the last consumed update. The guard in
// the WHERE clause keeps the cursor from moving backwards under concurrent
// polls.
func (s *BotsStore) AdvanceCursor(botID, updateID int64) error {
	tx := s.db.Model(&model.TelegramBot{}).
		Where("id = ? AND update_cursor < ?", botID, updateID).
		Update("update_cursor", updateID)
	if tx.Error != nil {
		return fmt.Errorf("%w: %v", store.ErrStoreUnavailable, tx.Error)
	}
	return nil
}
