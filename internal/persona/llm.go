package persona

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/go-deepseek/deepseek"
	"github.com/go-deepseek/deepseek/request"
)

const llmModel = "deepseek-chat"

// LLMRenderer rewrites reminder text in the persona's voice using the
// DeepSeek chat API. Failures are recoverable: the scheduler falls back to
// the raw payload, so this renderer returns errors instead of retrying.
type LLMRenderer struct {
	client deepseek.Client
}

func NewLLMRenderer(apiKey string) (*LLMRenderer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("DeepSeek API key is required")
	}

	client, err := deepseek.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create DeepSeek client: %w", err)
	}

	return &LLMRenderer{client: client}, nil
}

func (r *LLMRenderer) Render(ctx context.Context, personaID, payload string) (string, error) {
	p, ok := Get(personaID)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownPersona, personaID)
	}

	system := fmt.Sprintf(
		"You are %s: %s. Rewrite the user's reminder as a short delivery message in your voice. Keep the original meaning intact and do not add information.",
		p.Name, p.Description,
	)

	chatReq := &request.ChatCompletionsRequest{
		Model: llmModel,
		Messages: []*request.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: payload},
		},
		Stream: false,
	}

	resp, err := r.client.CallChatCompletionsChat(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("DeepSeek API request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("DeepSeek returned an empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
