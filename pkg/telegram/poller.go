// Package telegram discovers the chat a user has opened with a bot by
// polling the bot API for pending message updates.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tg "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"telelink/pkg/logging"
)

// ErrNoUpdates is returned when no pending update arrives inside the poll
// window. Callers surface it as "no message received yet".
var ErrNoUpdates = errors.New("no pending bot updates")

// DefaultPollWindow bounds a single poll when no window is configured.
const DefaultPollWindow = 10 * time.Second

// Discovery is the identity extracted from the first pending update.
type Discovery struct {
	TelegramUserID int64
	Username       string
	ChatID         int64
	UpdateID       int64
}

// Poller discovers a user's chat from pending bot updates.
type Poller interface {
	// Discover performs a one-shot bounded poll starting after offset.
	// Returns ErrNoUpdates when nothing arrives inside the window.
	Discover(ctx context.Context, botToken string, offset int64) (*Discovery, error)
}

// BotPoller implements Poller against the Telegram bot API.
type BotPoller struct {
	window time.Duration
	opts   []tg.Option
}

var _ Poller = (*BotPoller)(nil)

// NewBotPoller creates a poller with the given poll window. Extra options
// are passed through to the underlying bot client, e.g. a custom HTTP
// client via tg.WithHTTPClient.
func NewBotPoller(window time.Duration, opts ...tg.Option) *BotPoller {
	if window <= 0 {
		window = DefaultPollWindow
	}
	return &BotPoller{window: window, opts: opts}
}

// Discover polls for pending message updates for at most the poll window
// and picks the first one. It is a one-shot call: no retry loop, and the
// caller persists the returned UpdateID as the next poll's offset.
func (p *BotPoller) Discover(ctx context.Context, botToken string, offset int64) (*Discovery, error) {
	updates := make(chan *models.Update, 16)

	opts := append([]tg.Option{
		tg.WithSkipGetMe(),
		tg.WithInitialOffset(offset),
		tg.WithAllowedUpdates([]string{"message"}),
		tg.WithDefaultHandler(func(_ context.Context, _ *tg.Bot, update *models.Update) {
			select {
			case updates <- update:
			default:
			}
		}),
	}, p.opts...)

	b, err := tg.New(botToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("bot client init failed: %w", err)
	}

	pollCtx, cancel := context.WithTimeout(ctx, p.window)
	defer cancel()

	go b.Start(pollCtx)

	for {
		select {
		case update := <-updates:
			msg := update.Message
			if msg == nil || msg.From == nil {
				// not a message update; keep waiting out the window
				continue
			}
			logging.Ctx(ctx).Debug().
				Int64("update_id", update.ID).
				Int64("chat_id", msg.Chat.ID).
				Msg("discovered pending update")
			return &Discovery{
				TelegramUserID: msg.From.ID,
				Username:       msg.From.Username,
				ChatID:         msg.Chat.ID,
				UpdateID:       update.ID,
			}, nil
		case <-pollCtx.Done():
			return nil, ErrNoUpdates
		}
	}
}
