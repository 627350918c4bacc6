package endpoints

import (
	"encoding/json"
	"net/http"

	"telelink/pkg/model"
	"telelink/pkg/server"
	"telelink/pkg/server/store"
)

type apiKeyRequest struct {
	APIKey string `json:"api_key"`
}

// ValidateResponse represents the response from /validate-api-key. The
// entitlements come back in their stored shape.
type ValidateResponse struct {
	UserID       int64              `json:"user_id"`
	Entitlements model.Entitlements `json:"entitlements"`
}

// RegisterValidateEndpoint registers the API key validation endpoint
func RegisterValidateEndpoint(s *server.Server) {
	// POST /validate-api-key - key lookup only, no side effects
	s.Router.HandleFunc("/validate-api-key", handleValidateAPIKey(s.Credentials)).Methods("POST")
}

func handleValidateAPIKey(credentials store.CredentialsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req apiKeyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.APIKey == "" {
			respondWithError(w, http.StatusBadRequest, "api_key is required")
			return
		}

		identity, err := credentials.ValidateAPIKey(req.APIKey)
		if err != nil {
			respondWithError(w, statusForError(err), err.Error())
			return
		}

		respondWithJSON(w, http.StatusOK, ValidateResponse{
			UserID:       identity.UserID,
			Entitlements: identity.Entitlements,
		})
	}
}
