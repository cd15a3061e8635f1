package Iservices

import "context"

// IAnswerService turns a prompt into generated answer text.
type IAnswerService interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}
