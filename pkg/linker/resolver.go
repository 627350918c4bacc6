// Package linker orchestrates the lookup-or-create flow binding an
// internal user to a Telegram chat.
package linker

import (
	"context"
	"errors"

	"telelink/pkg/entitlement"
	"telelink/pkg/logging"
	"telelink/pkg/server/store"
	"telelink/pkg/telegram"
)

// Status reports whether a link was already present or freshly created.
type Status string

const (
	StatusExisting Status = "existing"
	StatusCreated  Status = "created"
)

// Link is the resolved Telegram binding for a caller.
type Link struct {
	ChatID   int64
	BotToken string
	Status   Status
}

// Resolver resolves a caller's Telegram binding, creating one from pending
// bot updates when none is stored.
type Resolver struct {
	gate     *entitlement.Gate
	bindings store.BindingsStore
	bots     store.BotsStore
	poller   telegram.Poller
}

// NewResolver wires the resolver's collaborators.
func NewResolver(gate *entitlement.Gate, bindings store.BindingsStore, bots store.BotsStore, poller telegram.Poller) *Resolver {
	return &Resolver{
		gate:     gate,
		bindings: bindings,
		bots:     bots,
		poller:   poller,
	}
}

// GetOrCreate runs the linking state machine for one request:
// authorize, look up the stored binding, fetch the bot credential, and
// either return the existing link or discover and persist a new one.
// All failures propagate as their typed errors; the only write happens on
// the created path.
func (r *Resolver) GetOrCreate(ctx context.Context, apiKey string) (*Link, error) {
	identity, err := r.gate.Check(apiKey)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithUser(ctx, identity.UserID)
	log := logging.Ctx(ctx)

	binding, err := r.bindings.FetchBindingForUser(identity.UserID)
	if err != nil && !errors.Is(err, store.ErrBindingNotFound) {
		return nil, err
	}

	bot, err := r.bots.FetchBotForUser(identity.UserID)
	if err != nil {
		return nil, err
	}

	if binding != nil {
		log.Debug().Int64("chat_id", binding.ChatID).Msg("returning existing telegram binding")
		return &Link{
			ChatID:   binding.ChatID,
			BotToken: bot.Token,
			Status:   StatusExisting,
		}, nil
	}

	discovery, err := r.poller.Discover(ctx, bot.Token, bot.UpdateCursor+1)
	if err != nil {
		return nil, err
	}

	err = r.bindings.UpsertBinding(store.Binding{
		TelegramUserID: discovery.TelegramUserID,
		Username:       discovery.Username,
		UserID:         identity.UserID,
		ChatID:         discovery.ChatID,
	})
	if err != nil {
		return nil, err
	}

	// The binding is durable at this point; a stale cursor only means one
	// re-observed update on the next poll.
	if err := r.bots.AdvanceCursor(bot.ID, discovery.UpdateID); err != nil {
		log.Warn().Err(err).Int64("bot_id", bot.ID).Msg("failed to advance update cursor")
	}

	log.Info().
		Int64("chat_id", discovery.ChatID).
		Int64("telegram_user_id", discovery.TelegramUserID).
		Msg("created telegram binding")

	return &Link{
		ChatID:   discovery.ChatID,
		BotToken: bot.Token,
		Status:   StatusCreated,
	}, nil
}
