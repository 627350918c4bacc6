package linker

import (
	"context"

	"github.com/stretchr/testify/mock"

	"telelink/pkg/server/store"
	"telelink/pkg/telegram"
)

// MockCredentialsStore implements store.CredentialsStore using testify/mock
type MockCredentialsStore struct {
	mock.Mock
}

func (m *MockCredentialsStore) ValidateAPIKey(apiKey string) (*store.Identity, error) {
	args := m.Called(apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Identity), args.Error(1)
}

// MockBindingsStore implements store.BindingsStore using testify/mock
type MockBindingsStore struct {
	mock.Mock
}

func (m *MockBindingsStore) FetchBindingForUser(userID int64) (*store.Binding, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Binding), args.Error(1)
}

func (m *MockBindingsStore) UpsertBinding(binding store.Binding) error {
	args := m.Called(binding)
	return args.Error(0)
}

// MockBotsStore implements store.BotsStore using testify/mock
type MockBotsStore struct {
	mock.Mock
}

func (m *MockBotsStore) FetchBotForUser(userID int64) (*store.Bot, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Bot), args.Error(1)
}

func (m *MockBotsStore) UpsertBot(userID *int64, token string) error {
	args := m.Called(userID, token)
	return args.Error(0)
}

func (m *MockBotsStore) AdvanceCursor(botID, updateID int64) error {
	args := m.Called(botID, updateID)
	return args.Error(0)
}

// MockPoller implements telegram.Poller using testify/mock
type MockPoller struct {
	mock.Mock
}

func (m *MockPoller) Discover(ctx context.Context, botToken string, offset int64) (*telegram.Discovery, error) {
	args := m.Called(ctx, botToken, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*telegram.Discovery), args.Error(1)
}
