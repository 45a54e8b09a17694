// Package llm provides LLM provider abstractions.
//
// Each provider implementation hides:
// - API client initialization and authentication
// - Request/response format conversion
// - Provider-specific tool-call encoding
package llm

import (
	"context"
)

// Provider defines the abstract interface for chat-completion providers.
// Implementations hide provider-specific wire formats while exposing a
// consistent tool-calling chat interface.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Model returns the current model being used.
	Model() string

	// ChatWithTools sends a chat completion request with tool definitions.
	// The model may respond with tool calls in LLMResponse.ToolCalls.
	// An empty tools slice degrades to a plain completion.
	ChatWithTools(ctx context.Context, messages []ChatMessage, tools []ToolDefinition) (LLMResponse, error)
}

// Embedder converts texts into fixed-dimension vectors, one per input,
// order preserved. Whitespace-only inputs must be substituted with a
// single-space placeholder before hitting the wire.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
