package provider

import "context"

// IAnswerProvider completes a single prompt against a hosted language model.
type IAnswerProvider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}
