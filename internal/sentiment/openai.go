package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"coinpulse/internal/domain"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAIChatClient interface {
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// OpenAIClassifier is the chat-completion backend: it asks the model for a
// raw 3-way distribution as JSON and leaves normalization and thresholding
// to the scorer. Picked by deployment wiring when no inference server is
// configured, not as a runtime fallback.
type OpenAIClassifier struct {
	client openAIChatClient
	model  string
}

// NewOpenAIClassifier returns nil when no API key is configured.
func NewOpenAIClassifier(apiKey, model string) *OpenAIClassifier {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	if strings.TrimSpace(model) == "" {
		model = "gpt-4o-mini"
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClassifier{
		client: &openAIClient{client: client},
		model:  model,
	}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (domain.SentimentDistribution, error) {
	systemPrompt := "You classify financial text sentiment. Return ONLY a JSON object with keys negative, neutral, positive holding probabilities that sum to 1. No markdown."

	completion, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage("Text:\n" + text),
		},
	})
	if err != nil {
		return domain.SentimentDistribution{}, err
	}
	if len(completion.Choices) == 0 {
		return domain.SentimentDistribution{}, fmt.Errorf("empty classifier completion")
	}

	raw := trimCodeFence(completion.Choices[0].Message.Content)

	var dist domain.SentimentDistribution
	if err := json.Unmarshal([]byte(raw), &dist); err != nil {
		return domain.SentimentDistribution{}, fmt.Errorf("parse classifier json: %w", err)
	}
	return dist, nil
}

func trimCodeFence(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "```") {
		v = strings.TrimPrefix(v, "```")
		v = strings.TrimSpace(v)
		if strings.HasPrefix(strings.ToLower(v), "json") {
			v = strings.TrimSpace(v[4:])
		}
		v = strings.TrimSuffix(v, "```")
		v = strings.TrimSpace(v)
	}
	return v
}

type openAIClient struct {
	client openai.Client
}

func (c *openAIClient) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
