package service

import (
	"context"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIService generates text through any OpenAI-compatible endpoint,
// including local LLM servers.
type OpenAIService struct {
	client *openai.Client
}

func NewOpenAIService(baseURL string, apiKey string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // Set this to your local LLM server URL
	}
	return &OpenAIService{client: openai.NewClientWithConfig(config)}
}

func (s *OpenAIService) Generate(ctx context.Context, prompt string, model string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *OpenAIService) GenerateStream(ctx context.Context, prompt string, model string, handler StreamHandler) error {
	if handler == nil {
		handler = defaultStreamHandler
	}
	stream, err := s.client.CreateChatCompletionStream(
		ctx,
		openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		},
	)
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if len(resp.Choices) > 0 {
			handler(resp.Choices[0].Delta.Content)
		}
	}
}
