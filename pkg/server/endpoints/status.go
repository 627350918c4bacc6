package endpoints

import (
	"net/http"

	"gorm.io/gorm"

	"telelink/pkg/server"
)

const version = "0.1.0"

// RegisterStatusEndpoints registers the status and health endpoints
func RegisterStatusEndpoints(s *server.Server) {
	// GET /health - database connectivity probe (no auth required)
	s.Router.HandleFunc("/health", handleHealth(s.DB)).Methods("GET")

	// GET / - version banner (no auth required)
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{
			"service": "telelink",
			"version": version,
		})
	}
}

// handleHealth round-trips a trivial query so a dead database shows up as
// 503 rather than on the next real request.
func handleHealth(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var one int
		if err := db.WithContext(r.Context()).Raw("SELECT 1").Scan(&one).Error; err != nil {
			respondWithError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
