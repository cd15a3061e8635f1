package provider

import (
	"context"
	"fmt"

	"support-widget/internal/infra/logger"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

type GeminiProvider struct {
	Logger *logger.Logger
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, logger *logger.Logger, apiKey, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{Logger: logger, client: client, model: model}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	temp := float32(0.7)
	cfg := &genai.GenerateContentConfig{Temperature: &temp}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(systemPrompt+"\n\n"+prompt), cfg)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Gemini API error: %v", err))
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("Gemini returned nil response")
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
