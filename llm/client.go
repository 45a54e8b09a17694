// Client - Simple wrapper around providers.

package llm

import (
	"context"
)

// Client wraps a Provider with a simple interface.
type Client struct {
	provider Provider
}

// NewClient creates a new LLM client from a provider.
func NewClient(provider Provider) *Client {
	return &Client{provider: provider}
}

// Chat sends a plain chat completion request and returns just the content.
func (c *Client) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	response, err := c.provider.ChatWithTools(ctx, messages, nil)
	if err != nil {
		return "", err
	}
	return response.Content, nil
}

// ChatWithTools sends a chat completion request offering the given tools.
func (c *Client) ChatWithTools(ctx context.Context, messages []ChatMessage, tools []ToolDefinition) (LLMResponse, error) {
	return c.provider.ChatWithTools(ctx, messages, tools)
}

// Provider returns the underlying provider.
func (c *Client) Provider() Provider {
	return c.provider
}
