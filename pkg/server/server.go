package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"telelink/pkg/config"
	"telelink/pkg/crypt"
	"telelink/pkg/linker"
	"telelink/pkg/server/store"
)

type Server struct {
	Cipher      crypt.SymmetricCipher
	Router      *mux.Router
	DB          *gorm.DB
	Credentials store.CredentialsStore
	Resolver    *linker.Resolver
	Config      *config.Config
	srv         *http.Server
}

func NewServer(
	cipher crypt.SymmetricCipher,
	db *gorm.DB,
	credentials store.CredentialsStore,
	resolver *linker.Resolver,
	cfg *config.Config,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.BindAddress + ":" + cfg.Port,
		// The link endpoint blocks for up to one poll window, so the
		// write timeout has to outlast it.
		WriteTimeout: cfg.PollWindow() + 15*time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Cipher:      cipher,
		Router:      router,
		DB:          db,
		Credentials: credentials,
		Resolver:    resolver,
		Config:      cfg,
		srv:         srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
