package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"support-widget/internal/infra/logger"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeOpenAI(t *testing.T, content string, status int) (*OpenAIProvider, *openai.ChatCompletionRequest) {
	t.Helper()
	var got openai.ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
			return
		}
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:     "chatcmpl-1",
			Object: "chat.completion",
			Choices: []openai.ChatCompletionChoice{{
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
				FinishReason: openai.FinishReasonStop,
			}},
		})
	}))
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return NewOpenAIProviderWithConfig(logger.NewDiscardLogger(), cfg, ""), &got
}

func TestOpenAIProviderComplete(t *testing.T) {
	p, req := newFakeOpenAI(t, "We deliver within a week.", http.StatusOK)

	text, err := p.Complete(context.Background(), "How long is delivery?")
	require.NoError(t, err)

	assert.Equal(t, "We deliver within a week.", text)
	assert.Equal(t, openai.GPT4oMini, req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, "How long is delivery?", req.Messages[1].Content)
	assert.Equal(t, "openai", p.Name())
}

func TestOpenAIProviderEmptyChoice(t *testing.T) {
	p, _ := newFakeOpenAI(t, "", http.StatusOK)

	_, err := p.Complete(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenAIProviderAPIError(t *testing.T) {
	p, _ := newFakeOpenAI(t, "", http.StatusTooManyRequests)

	_, err := p.Complete(context.Background(), "hi")
	assert.ErrorContains(t, err, "openai completion")
}
