package endpoints

import (
	"encoding/json"
	"net/http"

	"telelink/pkg/linker"
	"telelink/pkg/logging"
	"telelink/pkg/server"
)

// LinkResponse represents the response from /get-or-create-telegram-user
type LinkResponse struct {
	ChatID   int64  `json:"chat_id"`
	BotToken string `json:"bot_token"`
	Message  string `json:"message"`
}

// RegisterTelegramEndpoints registers the Telegram linking endpoint
func RegisterTelegramEndpoints(s *server.Server) {
	s.Router.HandleFunc("/get-or-create-telegram-user", handleGetOrCreateTelegramUser(s.Resolver)).Methods("POST")
}

func handleGetOrCreateTelegramUser(resolver *linker.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req apiKeyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.APIKey == "" {
			respondWithError(w, http.StatusBadRequest, "api_key is required")
			return
		}

		ctx := logging.Context(r.Context())
		link, err := resolver.GetOrCreate(ctx, req.APIKey)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}

		message := "Telegram user linked"
		if link.Status == linker.StatusExisting {
			message = "Telegram user already linked"
		}
		respondWithJSON(w, http.StatusOK, LinkResponse{
			ChatID:   link.ChatID,
			BotToken: link.BotToken,
			Message:  message,
		})
	}
}
