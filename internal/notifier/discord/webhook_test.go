package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Query   string
	Content string
	Parse   []string
}

func newWebhookServer(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Content         string `json:"content"`
			AllowedMentions struct {
				Parse []string `json:"parse"`
			} `json:"allowed_mentions"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		if captured != nil {
			captured.Query = r.URL.RawQuery
			captured.Content = payload.Content
			captured.Parse = payload.AllowedMentions.Parse
		}

		w.WriteHeader(status)
		if body != "" {
			_, _ = w.Write([]byte(body))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNotifier_Send(t *testing.T) {
	tests := []struct {
		name      string
		wait      bool
		status    int
		body      string
		wantID    string
		wantQuery string
		wantErr   bool
	}{
		{
			name:      "Should return message id when confirmation is requested",
			wait:      true,
			status:    http.StatusOK,
			body:      `{"id": "1300000000000000001", "channel_id": "42", "content": "hi"}`,
			wantID:    "1300000000000000001",
			wantQuery: "wait=true",
		},
		{
			name:   "Should accept no content response in best effort mode",
			wait:   false,
			status: http.StatusNoContent,
		},
		{
			name:      "Should surface delivery failure when confirmation is requested",
			wait:      true,
			status:    http.StatusNotFound,
			body:      `{"message": "Unknown Webhook", "code": 10015}`,
			wantQuery: "wait=true",
			wantErr:   true,
		},
		{
			name:   "Should swallow delivery failure in best effort mode",
			wait:   false,
			status: http.StatusInternalServerError,
			body:   `oops`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured capturedRequest
			srv := newWebhookServer(t, tt.status, tt.body, &captured)

			n := New(Config{Timeout: time.Second})
			id, err := n.Send(context.Background(), srv.URL+"/api/webhooks/1/token", "<@123> übernimmt", tt.wait)

			assert.Equal(t, "<@123> übernimmt", captured.Content)
			assert.ElementsMatch(t, []string{"users", "roles"}, captured.Parse)
			assert.Equal(t, tt.wantQuery, captured.Query)

			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrDeliveryFailed)
				var deliveryErr *domain.DeliveryError
				require.ErrorAs(t, err, &deliveryErr)
				assert.Equal(t, tt.status, deliveryErr.StatusCode)
				assert.Contains(t, deliveryErr.Body, "Unknown Webhook")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestNotifier_SendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := srv.URL
	srv.Close()

	n := New(Config{Timeout: time.Second})

	_, err := n.Send(context.Background(), target, "hallo", true)
	require.ErrorIs(t, err, domain.ErrDeliveryFailed)

	_, err = n.Send(context.Background(), target, "hallo", false)
	require.NoError(t, err)
}

func TestNotifier_RateLimit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := New(Config{Timeout: time.Second, RatePerSecond: 0.001, Burst: 1})

	_, err := n.Send(context.Background(), srv.URL, "eins", false)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = n.Send(ctx, srv.URL, "zwei", true)
	require.ErrorIs(t, err, domain.ErrDeliveryFailed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second send must wait for the limiter")
}
