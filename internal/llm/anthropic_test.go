package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnthropicClientRequiresKey(t *testing.T) {
	_, err := newAnthropicClient(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestAnthropicComplete(t *testing.T) {
	var gotRequest map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"content": [{"type": "text", "text": "{\"items\": []}"}],
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{
		APIKey:  "test-key",
		Model:   "claude-3-5-haiku-20241022",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "parse this order", 500)
	require.NoError(t, err)
	assert.Equal(t, `{"items": []}`, text)

	assert.Equal(t, "claude-3-5-haiku-20241022", gotRequest["model"])
	assert.Equal(t, float64(500), gotRequest["max_tokens"])
}

func TestAnthropicCompleteErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "api error status",
			status:  http.StatusTooManyRequests,
			body:    `{"error": {"type": "rate_limit_error"}}`,
			wantErr: "anthropic API error (status 429)",
		},
		{
			name:    "empty content",
			status:  http.StatusOK,
			body:    `{"id": "msg_1", "content": []}`,
			wantErr: "no content in response",
		},
		{
			name:    "invalid json",
			status:  http.StatusOK,
			body:    `not json`,
			wantErr: "failed to parse response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := newAnthropicClient(Config{APIKey: "k", BaseURL: server.URL})
			require.NoError(t, err)

			_, err = client.Complete(context.Background(), "prompt", 100)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
