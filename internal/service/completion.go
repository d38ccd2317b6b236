package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/escapecenter/conciergebot/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

// CompletionProvider issues a chat completion request against a model tier.
type CompletionProvider interface {
	Complete(ctx context.Context, tier domain.ModelTier, turns []domain.ConversationTurn, temperature float64, maxTokens int) (domain.CompletionResult, error)
}

// OpenAIProvider adapts the OpenAI chat completions API to the
// orchestrator's provider contract.
type OpenAIProvider struct {
	client *openai.Client
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{client: openai.NewClient(apiKey)}
}

func (p *OpenAIProvider) Complete(ctx context.Context, tier domain.ModelTier, turns []domain.ConversationTurn, temperature float64, maxTokens int) (domain.CompletionResult, error) {
	messages := make([]openai.ChatCompletionMessage, len(turns))
	for i, turn := range turns {
		messages[i] = openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       tier.ID,
		Messages:    messages,
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return domain.CompletionResult{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.CompletionResult{}, domain.ErrEmptyCompletion
	}

	return domain.CompletionResult{
		Text:             strings.TrimSpace(resp.Choices[0].Message.Content),
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}
