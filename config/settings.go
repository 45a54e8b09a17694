// Package config provides application settings loaded from environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/richinex/persona/llm"
)

// Default configuration values.
const (
	DefaultPersonName     = "The site owner"
	DefaultChunkSize      = 500
	DefaultTopK           = 3
	DefaultMemoryCapacity = 10
	DefaultMaxToolRounds  = 8
	DefaultResumePath     = "data/resume.pdf"
	DefaultSummaryPath    = "data/summary.txt"
)

// Settings holds all application configuration.
type Settings struct {
	PersonName     string
	Provider       llm.ProviderType
	ChatModel      string
	EmbeddingModel string
	ChunkSize      int
	TopK           int
	MemoryCapacity int
	MaxToolRounds  int
	ResumePath     string
	SummaryPath    string
	LeadsDBPath    string // empty disables the local lead log
}

// New creates settings from environment variables. The provider argument
// overrides LLM_PROVIDER when non-empty. Returns an error for unknown
// providers or invalid numeric values.
func New(provider string) (Settings, error) {
	if provider == "" {
		provider = getEnv("LLM_PROVIDER", "openai")
	}
	providerType, err := llm.ParseProviderType(provider)
	if err != nil {
		return Settings{}, err
	}

	chunkSize, err := getEnvInt("CHUNK_SIZE", DefaultChunkSize)
	if err != nil {
		return Settings{}, err
	}
	topK, err := getEnvInt("RETRIEVAL_TOP_K", DefaultTopK)
	if err != nil {
		return Settings{}, err
	}
	memoryCapacity, err := getEnvInt("MEMORY_MAX_MESSAGES", DefaultMemoryCapacity)
	if err != nil {
		return Settings{}, err
	}
	maxToolRounds, err := getEnvInt("AGENT_MAX_TOOL_ROUNDS", DefaultMaxToolRounds)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		PersonName:     getEnv("PERSON_NAME", DefaultPersonName),
		Provider:       providerType,
		ChatModel:      getEnv("LLM_MODEL", ""),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", ""),
		ChunkSize:      chunkSize,
		TopK:           topK,
		MemoryCapacity: memoryCapacity,
		MaxToolRounds:  maxToolRounds,
		ResumePath:     getEnv("RESUME_PATH", DefaultResumePath),
		SummaryPath:    getEnv("SUMMARY_PATH", DefaultSummaryPath),
		LeadsDBPath:    getEnv("LEADS_DB", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", key, value)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, parsed)
	}
	return parsed, nil
}
