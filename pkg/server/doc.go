// Package server provides the HTTP server for the telelink API.
//
// It uses gorilla/mux for routing and wraps the handler chain in
// gorilla/handlers request logging.
//
// # Server Setup
//
//	srv := server.NewServer(cipher, db, credentials, resolver, cfg)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - POST /validate-api-key - premium key validation
//   - POST /get-or-create-telegram-user - chat linking
//   - GET / - version banner
//   - GET /health - database connectivity probe
package server
