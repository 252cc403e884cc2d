package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiService generates text with Google's Gemini models. Several API keys
// may be supplied; a failed call rotates to the next key and retries once.
type GeminiService struct {
	apiKeys    []string
	currentKey int
	client     *genai.Client
	mu         sync.Mutex
}

func defaultStreamHandler(response string) {
	println(response)
}

func NewGeminiService(apiKeys []string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	service := &GeminiService{apiKeys: apiKeys}
	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

// initClient builds the client for the current key. Callers hold the lock.
func (s *GeminiService) initClient() error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		return err
	}
	return s.initClient()
}

// Generate sends the prompt to the named model and returns the concatenated
// text parts of the response.
func (s *GeminiService) Generate(ctx context.Context, prompt string, model string) (string, error) {
	gm := s.client.GenerativeModel(model)
	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		// Try rotating API key if there's an error
		if rerr := s.rotateAPIKey(); rerr != nil {
			return "", rerr
		}
		gm = s.client.GenerativeModel(model)
		resp, err = gm.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", err
		}
	}
	return collectText(resp)
}

// GenerateStream sends the prompt and forwards each response chunk to the
// handler as it arrives.
func (s *GeminiService) GenerateStream(ctx context.Context, prompt string, model string, handler StreamHandler) error {
	if handler == nil {
		handler = defaultStreamHandler
	}
	iter := s.client.GenerativeModel(model).GenerateContentStream(ctx, genai.Text(prompt))

	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if rerr := s.rotateAPIKey(); rerr != nil {
				return rerr
			}
			iter = s.client.GenerativeModel(model).GenerateContentStream(ctx, genai.Text(prompt))
			resp, err = iter.Next()
			if err != nil {
				return err
			}
		}

		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					handler(string(text))
				}
			}
		}
	}
	return nil
}

func collectText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}
	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}
