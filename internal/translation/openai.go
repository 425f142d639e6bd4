package translation

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type openAIBackend struct {
	apiKey string
	model  string
	client *openai.Client
}

func newOpenAIBackend(apiKey, model string) *openAIBackend {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAIBackend{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

func (b *openAIBackend) Translate(ctx context.Context, word string) (string, error) {
	if b.apiKey == "" {
		return "", fmt.Errorf("OpenAI %w", ErrNoAPIKey)
	}

	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(word),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return resp.Choices[0].Message.Content, nil
}
