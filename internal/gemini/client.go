// Package gemini answers free-form questions through the Gemini
// OpenAI-compatible chat completions endpoint.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Client wraps the chat completions API for a single configured model.
type Client struct {
	api   openai.Client
	model string
}

// NewClient creates a Gemini client. baseURL points at the
// OpenAI-compatible endpoint; timeout bounds each request.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		api: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithHTTPClient(&http.Client{Timeout: timeout}),
			option.WithMaxRetries(0),
		),
		model: model,
	}
}

// Ask forwards prompt as a single user message and returns the model's
// text. An empty completion is an error: callers treat every failure
// the same way and an empty reply is useless to the user.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	chat, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("gemini returned no choices")
	}
	content := strings.TrimSpace(chat.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("gemini returned empty content")
	}
	return content, nil
}
