package telegram

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	tg "github.com/go-telegram/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBotAPI serves canned getUpdates responses so polls never leave the
// process. Each batch is served once; after that the result set is empty.
type stubBotAPI struct {
	mu      sync.Mutex
	batches []string
}

func (s *stubBotAPI) Do(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body := `{"ok":true,"result":[]}`
	if len(s.batches) > 0 {
		body = s.batches[0]
		s.batches = s.batches[1:]
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}, nil
}

func stubbedPoller(window time.Duration, batches ...string) *BotPoller {
	api := &stubBotAPI{batches: batches}
	return NewBotPoller(window, tg.WithHTTPClient(time.Second, api))
}

func TestNewBotPollerDefaultsWindow(t *testing.T) {
	assert.Equal(t, DefaultPollWindow, NewBotPoller(0).window)
	assert.Equal(t, DefaultPollWindow, NewBotPoller(-time.Second).window)
	assert.Equal(t, 3*time.Second, NewBotPoller(3*time.Second).window)
}

func TestDiscoverTimesOutWithNoUpdates(t *testing.T) {
	p := stubbedPoller(200 * time.Millisecond)

	start := time.Now()
	_, err := p.Discover(context.Background(), "123456:TEST", 0)
	assert.ErrorIs(t, err, ErrNoUpdates)
	// one-shot poll: returns as soon as the window closes
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDiscoverPicksFirstMessageUpdate(t *testing.T) {
	p := stubbedPoller(5*time.Second,
		`{"ok":true,"result":[{"update_id":10,"message":{"message_id":1,"date":1700000000,"text":"/start","from":{"id":7042,"is_bot":false,"first_name":"Alice","username":"alice"},"chat":{"id":555,"type":"private"}}}]}`,
	)

	discovery, err := p.Discover(context.Background(), "123456:TEST", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7042), discovery.TelegramUserID)
	assert.Equal(t, "alice", discovery.Username)
	assert.Equal(t, int64(555), discovery.ChatID)
	assert.Equal(t, int64(10), discovery.UpdateID)
}

func TestDiscoverSkipsNonMessageUpdates(t *testing.T) {
	p := stubbedPoller(5*time.Second,
		`{"ok":true,"result":[{"update_id":9,"edited_message":{"message_id":1,"date":1700000000,"chat":{"id":1,"type":"private"}}},{"update_id":10,"message":{"message_id":2,"date":1700000001,"text":"hi","from":{"id":7042,"is_bot":false,"first_name":"Alice","username":"alice"},"chat":{"id":555,"type":"private"}}}]}`,
	)

	discovery, err := p.Discover(context.Background(), "123456:TEST", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10), discovery.UpdateID)
}
