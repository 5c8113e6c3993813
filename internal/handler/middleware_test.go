package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler собирает сообщения slog для проверки формата логов доступа.
type recordingHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *recordingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(_ string) slog.Handler      { return h }

func TestAccessLoggerEntryAndExit(t *testing.T) {
	rec := &recordingHandler{}
	mw := AccessLogger(slog.New(rec))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req.RemoteAddr = "10.0.0.5:54321"
	req.Header.Set("User-Agent", "curl/8.5.0")
	mw(next).ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, rec.messages, 2)
	assert.Equal(t, "POST /users - 10.0.0.5 - curl/8.5.0 - Request started", rec.messages[0])
	assert.Regexp(t, regexp.MustCompile(`^POST /users - 201 - \d+ms - Request completed$`), rec.messages[1])
}

func TestAccessLoggerMissingUserAgent(t *testing.T) {
	rec := &recordingHandler{}
	mw := AccessLogger(slog.New(rec))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.5:54321"
	mw(next).ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, rec.messages, 2)
	// пустой User-Agent остаётся пустым сегментом между разделителями
	assert.Equal(t, "GET /health - 10.0.0.5 -  - Request started", rec.messages[0])
}

func TestAccessLoggerPrefersRealIPHeader(t *testing.T) {
	rec := &recordingHandler{}
	mw := AccessLogger(slog.New(rec))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.RemoteAddr = "10.0.0.5:54321"
	req.Header.Set("X-Real-IP", "203.0.113.9")
	req.Header.Set("User-Agent", "curl/8.5.0")
	mw(next).ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, rec.messages, 2)
	assert.Equal(t, "GET /users - 203.0.113.9 - curl/8.5.0 - Request started", rec.messages[0])
}

func TestAccessLoggerDefaultStatus(t *testing.T) {
	rec := &recordingHandler{}
	mw := AccessLogger(slog.New(rec))

	// обработчик пишет тело без явного WriteHeader
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.5:54321"
	mw(next).ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, rec.messages, 2)
	assert.Regexp(t, regexp.MustCompile(`^GET /health - 200 - \d+ms - Request completed$`), rec.messages[1])
}
