package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlens/resume-analyzer/internal/config"
)

func testProviderConfig(endpoint string) config.ProviderConfig {
	return config.ProviderConfig{
		Name:     "openai",
		APIKey:   "test-key",
		Endpoint: endpoint,
		Model:    "gpt-4o-mini",
		Timeout:  5 * time.Second,
	}
}

func chatReply(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func TestOpenAIClient_Complete(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply("OVERALL_SCORE: 85/100")))
	}))
	defer server.Close()

	client := NewOpenAIClient(testProviderConfig(server.URL))

	reply, err := client.Complete(context.Background(), "system prompt", "user prompt")

	require.NoError(t, err)
	assert.Equal(t, "OVERALL_SCORE: 85/100", reply)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
}

func TestOpenAIClient_AzureRequestForm(t *testing.T) {
	var gotPath, gotAPIVersion, gotAPIKey, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIVersion = r.URL.Query().Get("api-version")
		gotAPIKey = r.Header.Get("api-key")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply("ok")))
	}))
	defer server.Close()

	cfg := testProviderConfig(server.URL)
	cfg.APIVersion = "2024-02-01"
	client := NewOpenAIClient(cfg)

	_, err := client.Complete(context.Background(), "", "user prompt")

	require.NoError(t, err)
	assert.Equal(t, "/openai/deployments/gpt-4o-mini/chat/completions", gotPath)
	assert.Equal(t, "2024-02-01", gotAPIVersion)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Empty(t, gotAuth)
}

func TestOpenAIClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"bad key"}}`, ErrAuthentication},
		{"forbidden", http.StatusForbidden, `{"error":{"message":"no access"}}`, ErrAuthentication},
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`, ErrRateLimited},
		{"server error", http.StatusInternalServerError, `upstream exploded`, ErrProviderUnavailable},
		{"bad gateway", http.StatusBadGateway, ``, ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewOpenAIClient(testProviderConfig(server.URL))

			_, err := client.Complete(context.Background(), "sys", "user")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpenAIClient_AttachesProviderMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded for this deployment"}}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(testProviderConfig(server.URL))

	_, err := client.Complete(context.Background(), "sys", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded for this deployment")
}

func TestOpenAIClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewOpenAIClient(testProviderConfig(server.URL))

	_, err := client.Complete(context.Background(), "sys", "user")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(testProviderConfig(server.URL))

	_, err := client.Complete(context.Background(), "sys", "user")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
