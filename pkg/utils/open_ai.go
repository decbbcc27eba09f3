package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"lotrinh/internal/models/request_models"
)

// OpenAIPlannerClient is the alternate PlannerClientInterface implementation,
// selected with AI_PROVIDER=openai.
type OpenAIPlannerClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlannerClient(apiKey, model string) *OpenAIPlannerClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlannerClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIPlannerClient) GenerateDayGrouping(ctx context.Context, pois []request_models.POISummary, dayCount int) (string, error) {
	if len(pois) == 0 {
		return "", fmt.Errorf("no pois")
	}
	if dayCount < 1 || dayCount > 30 {
		return "", fmt.Errorf("bad dayCount %d", dayCount)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You return only valid JSON, never prose or markdown.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildGroupingPrompt(pois, dayCount),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIPlannerClient) Close() error { return nil }
