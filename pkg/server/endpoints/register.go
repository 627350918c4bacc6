// Package endpoints registers the HTTP API handlers on a server's router.
package endpoints

import (
	"telelink/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterValidateEndpoint(srv)
	RegisterTelegramEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
