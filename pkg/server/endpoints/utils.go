package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"telelink/pkg/entitlement"
	"telelink/pkg/server/store"
	"telelink/pkg/telegram"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// statusForError maps the typed errors raised by the stores, the
// entitlement gate and the poller onto HTTP status codes. Anything
// unclassified is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrAPIKeyInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, entitlement.ErrNotEntitled):
		return http.StatusForbidden
	case errors.Is(err, store.ErrBotNotConfigured),
		errors.Is(err, telegram.ErrNoUpdates):
		return http.StatusNotFound
	case errors.Is(err, store.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
