package provider

import (
	"context"
	"errors"
	"fmt"

	"support-widget/internal/infra/logger"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful customer support assistant for a furniture store. " +
	"Answer briefly in plain text without markdown."

var ErrEmptyCompletion = errors.New("model returned no content")

type OpenAIProvider struct {
	Logger *logger.Logger
	client *openai.Client
	model  string
}

func NewOpenAIProvider(logger *logger.Logger, apiKey, model string) *OpenAIProvider {
	return NewOpenAIProviderWithConfig(logger, openai.DefaultConfig(apiKey), model)
}

// NewOpenAIProviderWithConfig allows pointing the client at a compatible endpoint.
func NewOpenAIProviderWithConfig(logger *logger.Logger, cfg openai.ClientConfig, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{
		Logger: logger,
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		p.Logger.Error(fmt.Sprintf("OpenAI error: %v", err))
		return "", fmt.Errorf("openai completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		p.Logger.Warn("OpenAI returned empty choices")
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
