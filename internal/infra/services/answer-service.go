package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"support-widget/internal/domain/conversation"
	"support-widget/internal/infra/logger"
	"support-widget/internal/infra/provider"
	"support-widget/internal/metrics"
)

var ErrEmptyAnswer = errors.New("generated answer is empty after cleanup")

// AnswerService generates support answers through a language model provider.
type AnswerService struct {
	Logger   *logger.Logger
	Provider provider.IAnswerProvider
}

func NewAnswerService(logger *logger.Logger, provider provider.IAnswerProvider) *AnswerService {
	return &AnswerService{Logger: logger, Provider: provider}
}

// GenerateAnswer completes prompt and strips the formatting the widget cannot render.
func (as *AnswerService) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	raw, err := as.Provider.Complete(ctx, prompt)
	if err != nil {
		metrics.AnswerLatency.WithLabelValues(as.Provider.Name(), "error").Observe(time.Since(start).Seconds())
		as.Logger.Error(fmt.Sprintf("Failed to generate answer with %s: %v", as.Provider.Name(), err))
		return "", err
	}
	metrics.AnswerLatency.WithLabelValues(as.Provider.Name(), "ok").Observe(time.Since(start).Seconds())

	answer := conversation.CleanAnswer(raw)
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}
