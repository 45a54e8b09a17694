// LLM Provider Factory - creates provider/embedder pairs from the environment.
//
// Quick Start:
//
//	// Chat provider plus a matching embedder, API keys from environment
//	provider, embedder, err := llm.FromEnv(llm.ProviderOpenAI, "", "")
//
//	// Custom models
//	provider, embedder, err := llm.FromEnv(llm.ProviderGemini, "gemini-2.0-pro", "gemini-embedding-001")
//
// Anthropic and DeepSeek ship no embeddings endpoint, so their chat
// providers are paired with the OpenAI embedder (OPENAI_API_KEY required).

package llm

import (
	"fmt"
	"os"
	"strings"
)

// ErrUnknownProvider is returned when a provider name cannot be parsed.
var ErrUnknownProvider = fmt.Errorf("unknown provider")

// ProviderType represents supported LLM providers.
type ProviderType int

const (
	// ProviderOpenAI is the OpenAI provider (GPT models).
	ProviderOpenAI ProviderType = iota
	// ProviderAnthropic is the Anthropic provider (Claude models).
	ProviderAnthropic
	// ProviderDeepSeek is the DeepSeek provider.
	ProviderDeepSeek
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini
)

// String returns the string representation of the provider type.
func (p ProviderType) String() string {
	switch p {
	case ProviderOpenAI:
		return "openai"
	case ProviderAnthropic:
		return "anthropic"
	case ProviderDeepSeek:
		return "deepseek"
	case ProviderGemini:
		return "gemini"
	default:
		return "unknown"
	}
}

// EnvVar returns the environment variable name for this provider's API key.
func (p ProviderType) EnvVar() string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderDeepSeek:
		return "DEEPSEEK_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

// DefaultModel returns the default chat model for this provider.
func (p ProviderType) DefaultModel() string {
	switch p {
	case ProviderOpenAI:
		return ModelOpenAIGPT4oMini
	case ProviderAnthropic:
		return ModelAnthropicClaudeSonnet4
	case ProviderDeepSeek:
		return ModelDeepSeekChat
	case ProviderGemini:
		return ModelGeminiFlash2
	default:
		return ""
	}
}

// DefaultEmbeddingModel returns the default embedding model for this
// provider, or empty when the provider has no embeddings endpoint.
func (p ProviderType) DefaultEmbeddingModel() string {
	switch p {
	case ProviderOpenAI:
		return ModelOpenAIEmbedding3Small
	case ProviderGemini:
		return ModelGeminiEmbedding
	default:
		return ""
	}
}

// ParseProviderType parses a provider from string (case-insensitive).
func ParseProviderType(s string) (ProviderType, error) {
	switch strings.ToLower(s) {
	case "openai", "gpt":
		return ProviderOpenAI, nil
	case "anthropic", "claude":
		return ProviderAnthropic, nil
	case "deepseek":
		return ProviderDeepSeek, nil
	case "gemini", "google":
		return ProviderGemini, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownProvider, s)
	}
}

// FromEnv creates a chat provider and a matching embedder, reading API keys
// from the environment. Empty model arguments select provider defaults.
func FromEnv(providerType ProviderType, model, embeddingModel string) (Provider, Embedder, error) {
	apiKey, err := apiKeyFromEnv(providerType)
	if err != nil {
		return nil, nil, err
	}

	if model == "" {
		model = providerType.DefaultModel()
	}

	switch providerType {
	case ProviderOpenAI:
		if embeddingModel == "" {
			embeddingModel = ModelOpenAIEmbedding3Small
		}
		p := NewOpenAIProvider(apiKey, model, embeddingModel)
		return p, p, nil
	case ProviderGemini:
		if embeddingModel == "" {
			embeddingModel = ModelGeminiEmbedding
		}
		p := NewGeminiProvider(apiKey, model, embeddingModel)
		return p, p, nil
	case ProviderAnthropic:
		embedder, err := openAIEmbedderFromEnv(embeddingModel)
		if err != nil {
			return nil, nil, err
		}
		return NewAnthropicProvider(apiKey, model), embedder, nil
	case ProviderDeepSeek:
		embedder, err := openAIEmbedderFromEnv(embeddingModel)
		if err != nil {
			return nil, nil, err
		}
		return NewDeepSeekProvider(apiKey, model), embedder, nil
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownProvider, providerType)
	}
}

func apiKeyFromEnv(providerType ProviderType) (string, error) {
	envVar := providerType.EnvVar()
	if envVar == "" {
		return "", fmt.Errorf("%w: %v", ErrUnknownProvider, providerType)
	}
	apiKey := os.Getenv(envVar)
	if apiKey == "" {
		return "", fmt.Errorf("%s: %s environment variable not set", providerType, envVar)
	}
	return apiKey, nil
}

// openAIEmbedderFromEnv builds the fallback embedder for providers without
// an embeddings endpoint.
func openAIEmbedderFromEnv(embeddingModel string) (Embedder, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("embeddings require OPENAI_API_KEY for this provider")
	}
	if embeddingModel == "" {
		embeddingModel = ModelOpenAIEmbedding3Small
	}
	return NewOpenAIProvider(apiKey, ModelOpenAIGPT4oMini, embeddingModel), nil
}

// Model identifier constants for supported providers.

// OpenAI model identifiers.
const (
	// ModelOpenAIGPT4oMini is GPT-4o-mini: small general-purpose default.
	ModelOpenAIGPT4oMini = "gpt-4o-mini"
	// ModelOpenAIGPT4o is GPT-4o.
	ModelOpenAIGPT4o = "gpt-4o"
	// ModelOpenAIEmbedding3Small is the small text embedding model.
	ModelOpenAIEmbedding3Small = "text-embedding-3-small"
	// ModelOpenAIEmbedding3Large is the large text embedding model.
	ModelOpenAIEmbedding3Large = "text-embedding-3-large"
)

// Anthropic model identifiers.
const (
	// ModelAnthropicClaudeSonnet4 is Claude Sonnet 4: balanced performance.
	ModelAnthropicClaudeSonnet4 = "claude-sonnet-4-20250514"
	// ModelAnthropicClaudeHaiku4 is Claude Haiku 4: fast and efficient.
	ModelAnthropicClaudeHaiku4 = "claude-haiku-4-20250514"
)

// DeepSeek model identifiers.
const (
	// ModelDeepSeekChat is the general chat model.
	ModelDeepSeekChat = "deepseek-chat"
)

// Gemini model identifiers.
const (
	// ModelGeminiFlash2 is Gemini 2.0 Flash: speed optimized.
	ModelGeminiFlash2 = "gemini-2.0-flash"
	// ModelGeminiEmbedding is the Gemini text embedding model.
	ModelGeminiEmbedding = "gemini-embedding-001"
)
