package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"telelink/pkg/config"
	"telelink/pkg/entitlement"
	"telelink/pkg/linker"
	"telelink/pkg/model"
	"telelink/pkg/server"
	"telelink/pkg/server/store"
	"telelink/pkg/telegram"
)

type testEnv struct {
	creds    *MockCredentialsStore
	bindings *MockBindingsStore
	bots     *MockBotsStore
	poller   *MockPoller
	srv      *server.Server
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithDB(t, nil)
}

func newTestEnvWithDB(t *testing.T, db *gorm.DB) *testEnv {
	t.Helper()
	env := &testEnv{
		creds:    &MockCredentialsStore{},
		bindings: &MockBindingsStore{},
		bots:     &MockBotsStore{},
		poller:   &MockPoller{},
	}
	gate := entitlement.NewGate(env.creds, "telegram")
	resolver := linker.NewResolver(gate, env.bindings, env.bots, env.poller)
	cfg := &config.Config{BindAddress: "127.0.0.1", Port: "8000", RequiredPlugin: "telegram", PollWindowSeconds: 1}
	env.srv = server.NewServer(nil, db, env.creds, resolver, cfg)
	RegisterAll(env.srv)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	e.srv.Router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestValidateAPIKey(t *testing.T) {
	env := newTestEnv(t)
	env.creds.On("ValidateAPIKey", "k-valid").Return(&store.Identity{
		UserID:       42,
		Entitlements: model.Entitlements{Plugins: []string{"telegram", "email"}},
	}, nil)

	rec := env.do(t, "POST", "/validate-api-key", `{"api_key":"k-valid"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(42), body["user_id"])
	assert.Equal(t, map[string]interface{}{"plugins": []interface{}{"telegram", "email"}}, body["entitlements"])
}

func TestValidateAPIKeyUnknown(t *testing.T) {
	env := newTestEnv(t)
	env.creds.On("ValidateAPIKey", "k-bad").Return(nil, store.ErrAPIKeyInvalid)

	rec := env.do(t, "POST", "/validate-api-key", `{"api_key":"k-bad"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "invalid")
}

func TestValidateAPIKeyMissingKey(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/validate-api-key", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, "POST", "/validate-api-key", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.creds.AssertNotCalled(t, "ValidateAPIKey", mock.Anything)
}

func entitled() *store.Identity {
	return &store.Identity{
		UserID:       42,
		Entitlements: model.Entitlements{Plugins: []string{"telegram"}},
	}
}

func TestGetOrCreateTelegramUserCreated(t *testing.T) {
	env := newTestEnv(t)
	env.creds.On("ValidateAPIKey", "k-valid").Return(entitled(), nil)
	env.bindings.On("FetchBindingForUser", int64(42)).Return(nil, store.ErrBindingNotFound)
	env.bots.On("FetchBotForUser", int64(42)).Return(&store.Bot{ID: 1, Token: "123456:ABC"}, nil)
	env.poller.On("Discover", mock.Anything, "123456:ABC", int64(1)).Return(&telegram.Discovery{
		TelegramUserID: 7042,
		Username:       "alice",
		ChatID:         555,
		UpdateID:       1,
	}, nil)
	env.bindings.On("UpsertBinding", mock.Anything).Return(nil)
	env.bots.On("AdvanceCursor", int64(1), int64(1)).Return(nil)

	rec := env.do(t, "POST", "/get-or-create-telegram-user", `{"api_key":"k-valid"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(555), body["chat_id"])
	assert.Equal(t, "123456:ABC", body["bot_token"])
	assert.Equal(t, "Telegram user linked", body["message"])
}

func TestGetOrCreateTelegramUserExisting(t *testing.T) {
	env := newTestEnv(t)
	env.creds.On("ValidateAPIKey", "k-valid").Return(entitled(), nil)
	env.bindings.On("FetchBindingForUser", int64(42)).Return(&store.Binding{
		TelegramUserID: 7042,
		UserID:         42,
		ChatID:         555,
	}, nil)
	env.bots.On("FetchBotForUser", int64(42)).Return(&store.Bot{ID: 1, Token: "123456:ABC"}, nil)

	rec := env.do(t, "POST", "/get-or-create-telegram-user", `{"api_key":"k-valid"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Telegram user already linked", decodeBody(t, rec)["message"])
	env.poller.AssertNotCalled(t, "Discover", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrCreateTelegramUserStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		arrange  func(env *testEnv)
		wantCode int
	}{
		{
			name: "unauthorized",
			arrange: func(env *testEnv) {
				env.creds.On("ValidateAPIKey", "k").Return(nil, store.ErrAPIKeyInvalid)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "forbidden",
			arrange: func(env *testEnv) {
				env.creds.On("ValidateAPIKey", "k").Return(&store.Identity{
					UserID:       42,
					Entitlements: model.Entitlements{Plugins: []string{"email"}},
				}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "no bot configured",
			arrange: func(env *testEnv) {
				env.creds.On("ValidateAPIKey", "k").Return(entitled(), nil)
				env.bindings.On("FetchBindingForUser", int64(42)).Return(nil, store.ErrBindingNotFound)
				env.bots.On("FetchBotForUser", int64(42)).Return(nil, store.ErrBotNotConfigured)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "no pending updates",
			arrange: func(env *testEnv) {
				env.creds.On("ValidateAPIKey", "k").Return(entitled(), nil)
				env.bindings.On("FetchBindingForUser", int64(42)).Return(nil, store.ErrBindingNotFound)
				env.bots.On("FetchBotForUser", int64(42)).Return(&store.Bot{ID: 1, Token: "t"}, nil)
				env.poller.On("Discover", mock.Anything, "t", int64(1)).Return(nil, telegram.ErrNoUpdates)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store unavailable",
			arrange: func(env *testEnv) {
				env.creds.On("ValidateAPIKey", "k").Return(nil, store.ErrStoreUnavailable)
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.arrange(env)

			rec := env.do(t, "POST", "/get-or-create-telegram-user", `{"api_key":"k"}`)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetStatus(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "telelink", body["service"])
	assert.NotEmpty(t, body["version"])
}

func newHealthEnv(t *testing.T) (*testEnv, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return newTestEnvWithDB(t, db), sqlMock
}

func TestGetHealth(t *testing.T) {
	env, sqlMock := newHealthEnv(t)
	sqlMock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	rec := env.do(t, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestGetHealthDatabaseDown(t *testing.T) {
	env, sqlMock := newHealthEnv(t)
	sqlMock.ExpectQuery("SELECT 1").WillReturnError(assert.AnError)

	rec := env.do(t, "GET", "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
