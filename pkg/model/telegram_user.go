package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"telelink/pkg/crypt"
)

// TelegramUser is the persisted binding between an internal account and a
// Telegram chat. The Telegram identifiers are encrypted at rest; the
// primary key is a digest of the plaintext Telegram user id so upserts can
// conflict on it even though the ciphertexts are nondeterministic.
type TelegramUser struct {
	TelegramUserHash string    `gorm:"column:telegram_user_hash;primaryKey"`
	TelegramUserID   string    `gorm:"column:telegram_user_id"`
	Username         string    `gorm:"column:username"`
	UserID           int64     `gorm:"column:user_id;index"`
	ChatID           string    `gorm:"column:chat_id"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (TelegramUser) TableName() string {
	return "telegram_users"
}

// HashTelegramUserID returns the digest used as the binding's upsert key.
func HashTelegramUserID(telegramUserID int64) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(telegramUserID, 10)))
	return hex.EncodeToString(sum[:])
}

func (u *TelegramUser) BeforeSave(tx *gorm.DB) error {
	cipher, err := getCipherForDb(tx)
	if err != nil {
		return err
	}

	for _, field := range []*string{&u.TelegramUserID, &u.Username, &u.ChatID} {
		*field, err = crypt.EncryptString(cipher, u.TelegramUserHash, *field)
		if err != nil {
			return fmt.Errorf("binding encryption failed for user_id=%d: %w", u.UserID, err)
		}
	}
	return nil
}

func (u *TelegramUser) AfterFind(tx *gorm.DB) error {
	cipher, err := getCipherForDb(tx)
	if err != nil {
		return err
	}

	for _, field := range []*string{&u.TelegramUserID, &u.Username, &u.ChatID} {
		if *field == "" {
			continue
		}
		*field, err = crypt.DecryptString(cipher, u.TelegramUserHash, *field)
		if err != nil {
			return fmt.Errorf("binding decryption failed for user_id=%d: %w", u.UserID, err)
		}
	}
	return nil
}
