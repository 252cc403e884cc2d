package service

import "context"

// AIService is the minimal surface the summarizer needs from a text model.
// Implementations address models by name so callers can retry the same
// prompt against a fallback model.
type AIService interface {
	Generate(ctx context.Context, prompt string, model string) (string, error)
}

// StreamHandler receives each chunk of a streamed response.
type StreamHandler func(chunk string)

// StreamGenerator is an optional capability for implementations that can
// stream partial output. Callers detect it with a type assertion.
type StreamGenerator interface {
	GenerateStream(ctx context.Context, prompt string, model string, handler StreamHandler) error
}
