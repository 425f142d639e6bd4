package translation

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type geminiBackend struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

func newGeminiBackend(apiKey, model string) *geminiBackend {
	if model == "" {
		model = defaultGeminiModel
	}
	return &geminiBackend{
		apiKey: apiKey,
		model:  model,
	}
}

func (b *geminiBackend) Translate(ctx context.Context, word string) (string, error) {
	if b.apiKey == "" {
		return "", fmt.Errorf("Gemini %w", ErrNoAPIKey)
	}

	b.once.Do(func() {
		b.client, b.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  b.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	if b.initErr != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", b.initErr)
	}

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt(word)), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return resp.Text(), nil
}
