package console

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"trader-backend"}`))
	}))

	notifier := &recordingNotifier{}
	p := NewProbe(client, notifier, testLogger())

	assert.Equal(t, "OK: ok", p.Ping(context.Background()))

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "backend connection ok", last.message)
	assert.True(t, last.ok)
}

func TestPingEmptyStatusFallsBack(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))

	p := NewProbe(client, &recordingNotifier{}, testLogger())
	assert.Equal(t, "OK: healthy", p.Ping(context.Background()))
}

func TestPingFailure(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))

	notifier := &recordingNotifier{}
	p := NewProbe(client, notifier, testLogger())

	assert.Equal(t, "ERROR", p.Ping(context.Background()))

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "backend connection failed", last.message)
	assert.False(t, last.ok)
}

func TestCheckToken(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLabel string
		wantMsg   string
		wantOK    bool
	}{
		{"valid token", `{"ok": true, "token_prefix": "eyJ0"}`, "OK: token_ok", "token ok", true},
		{"stale token", `{"ok": false}`, "OK: token_fail", "token check failed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/token/debug", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))

			notifier := &recordingNotifier{}
			p := NewProbe(client, notifier, testLogger())

			assert.Equal(t, tt.wantLabel, p.CheckToken(context.Background()))

			last, ok := notifier.last()
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, last.message)
			assert.Equal(t, tt.wantOK, last.ok)
		})
	}
}

func TestCheckTokenRequestFailureKeepsLabel(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))

	p := NewProbe(client, &recordingNotifier{}, testLogger())
	assert.Empty(t, p.CheckToken(context.Background()), "empty label leaves the previous one in place")
}

func TestIssueToken(t *testing.T) {
	client := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/token", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status_code":200,"response":{"token":"eyJ0..."}}`))
	}))

	notifier := &recordingNotifier{}
	p := NewProbe(client, notifier, testLogger())

	assert.Equal(t, "OK: token_issued", p.IssueToken(context.Background()))

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "token issued", last.message)
	assert.True(t, last.ok)
}
