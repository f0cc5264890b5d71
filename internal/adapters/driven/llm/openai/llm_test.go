package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driven"
)

func newTestService(t *testing.T, baseURL string) *LLMService {
	t.Helper()
	svc, err := NewLLMService(Config{APIKey: "sk-test", BaseURL: baseURL})
	require.NoError(t, err)
	return svc
}

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(Config{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewLLMService_Defaults(t *testing.T) {
	svc := newTestService(t, "")
	assert.Equal(t, DefaultModel, svc.ModelName())
}

func TestChat_SendsMessagesAndReturnsContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, 256, req.MaxTokens)

		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"The tone is DOVISH."}}]}`)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	out, err := svc.Chat(context.Background(), []domain.ConversationMessage{
		{Role: domain.RoleSystem, Content: "You are an analyst."},
		{Role: domain.RoleUser, Content: "What is the tone?"},
	}, driven.ChatOptions{MaxTokens: 256})
	require.NoError(t, err)
	assert.Equal(t, "The tone is DOVISH.", out)
}

func TestChat_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"context length exceeded"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	_, err := svc.Chat(context.Background(), []domain.ConversationMessage{
		{Role: domain.RoleUser, Content: "question"},
	}, driven.ChatOptions{})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestChat_EmptyChoicesRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	_, err := svc.Chat(context.Background(), []domain.ConversationMessage{
		{Role: domain.RoleUser, Content: "question"},
	}, driven.ChatOptions{})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestChat_Unreachable(t *testing.T) {
	svc := newTestService(t, "http://127.0.0.1:1")

	_, err := svc.Chat(context.Background(), []domain.ConversationMessage{
		{Role: domain.RoleUser, Content: "question"},
	}, driven.ChatOptions{})
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/models" {
			fmt.Fprint(w, `{"data":[]}`)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	assert.NoError(t, svc.Ping(context.Background()))
}
