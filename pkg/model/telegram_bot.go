package model

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"telelink/pkg/crypt"
)

// TelegramBot holds a bot credential. A row with a user_id is that user's
// dedicated bot; the row with user_id NULL is the shared default bot.
// update_cursor is the id of the last update already consumed from this
// bot, so polls resume past it instead of re-observing old messages.
type TelegramBot struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	UserID       *int64    `gorm:"column:user_id"`
	BotToken     string    `gorm:"column:bot_token"`
	UpdateCursor int64     `gorm:"column:update_cursor"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (TelegramBot) TableName() string {
	return "telegram_bots"
}

// aad returns the stable per-row context used when encrypting the token.
func (b *TelegramBot) aad() string {
	if b.UserID == nil {
		return "bot:default"
	}
	return "bot:" + strconv.FormatInt(*b.UserID, 10)
}

func (b *TelegramBot) BeforeSave(tx *gorm.DB) error {
	if b.BotToken == "" {
		// cursor-only updates carry no token
		return nil
	}

	cipher, err := getCipherForDb(tx)
	if err != nil {
		return err
	}

	b.BotToken, err = crypt.EncryptString(cipher, b.aad(), b.BotToken)
	if err != nil {
		return fmt.Errorf("bot token encryption failed: %w", err)
	}
	return nil
}

func (b *TelegramBot) AfterFind(tx *gorm.DB) error {
	if b.BotToken == "" {
		return nil
	}

	cipher, err := getCipherForDb(tx)
	if err != nil {
		return err
	}

	b.BotToken, err = crypt.DecryptString(cipher, b.aad(), b.BotToken)
	if err != nil {
		return fmt.Errorf("bot token decryption failed: %w", err)
	}
	return nil
}
