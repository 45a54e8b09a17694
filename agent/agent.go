// Dialogue loop implementation.
//
// This is THE canonical implementation of one conversation turn: update
// memory, classify intent, retrieve excerpts, compose the system prompt,
// then exchange with the model until it stops requesting tools.
//
// Information Hiding:
// - Model/tool round-trip protocol hidden
// - Retrieval and prompt composition coordination hidden
// - Memory management hidden

package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/richinex/persona/intent"
	"github.com/richinex/persona/llm"
	"github.com/richinex/persona/memory"
	"github.com/richinex/persona/prompt"
	"github.com/richinex/persona/rag"
	"github.com/richinex/persona/tools"
)

// ErrToolRoundsExceeded is returned when the model keeps requesting tools
// past the configured round cap.
var ErrToolRoundsExceeded = errors.New("model exceeded maximum tool round-trips")

// Config holds agent configuration.
type Config struct {
	// PersonName is the represented person's display name.
	PersonName string

	// Summary is the static biography included in every prompt.
	Summary string

	// TopK is the number of resume excerpts retrieved per turn.
	TopK int

	// MaxToolRounds caps model/tool round-trips within one turn.
	MaxToolRounds int
}

// DefaultConfig returns a basic agent configuration.
func DefaultConfig() Config {
	return Config{
		PersonName:    prompt.DefaultPersonName,
		TopK:          rag.DefaultTopK,
		MaxToolRounds: 8,
	}
}

// Agent answers questions as the represented person. One Agent owns one
// Memory; turns must not run concurrently against the same instance.
type Agent struct {
	config    Config
	client    *llm.Client
	retriever *rag.Retriever
	executor  *tools.Executor
	memory    *memory.Memory
	logger    zerolog.Logger
}

// New creates an agent with the given configuration and collaborators.
func New(config Config, provider llm.Provider, retriever *rag.Retriever, executor *tools.Executor, mem *memory.Memory, logger zerolog.Logger) *Agent {
	if config.TopK <= 0 {
		config.TopK = rag.DefaultTopK
	}
	if config.MaxToolRounds <= 0 {
		config.MaxToolRounds = DefaultConfig().MaxToolRounds
	}
	return &Agent{
		config:    config,
		client:    llm.NewClient(provider),
		retriever: retriever,
		executor:  executor,
		memory:    mem,
		logger:    logger,
	}
}

// Chat processes one user turn to completion, including however many tool
// round-trips the model requests, and returns the model's final text with
// surrounding whitespace stripped. Transport errors from the embedding or
// chat services propagate to the caller.
func (a *Agent) Chat(ctx context.Context, userMessage string) (string, error) {
	startTime := time.Now()
	a.memory.Add(llm.UserMessage(userMessage))

	detected := intent.Classify(userMessage)

	excerpts, err := a.retriever.Retrieve(ctx, userMessage, a.config.TopK)
	if err != nil {
		return "", fmt.Errorf("retrieval failed: %w", err)
	}
	contextText := strings.Join(excerpts, "\n\n")

	a.logger.Debug().
		Str("intent", string(detected)).
		Int("excerpts", len(excerpts)).
		Msg("turn started")

	systemPrompt := prompt.Compose(a.config.Summary, contextText, a.config.PersonName, detected)
	messages := append([]llm.ChatMessage{llm.SystemMessage(systemPrompt)}, a.memory.History()...)

	var totalUsage llm.TokenUsage
	llmCalls := 0

	for round := 0; round <= a.config.MaxToolRounds; round++ {
		if ctx.Err() != nil {
			return "", fmt.Errorf("turn cancelled: %w", ctx.Err())
		}

		response, err := a.client.ChatWithTools(ctx, messages, tools.Definitions())
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}
		llmCalls++
		totalUsage.Add(response.Usage)

		if len(response.ToolCalls) == 0 {
			final := strings.TrimSpace(response.Content)
			a.memory.Add(llm.AssistantMessage(response.Content))

			a.logger.Info().
				Int("llm_calls", llmCalls).
				Uint32("total_tokens", totalUsage.TotalTokens).
				Dur("duration", time.Since(startTime)).
				Msg("turn completed")

			return final, nil
		}

		// The assistant turn carrying the request precedes its results on
		// the wire.
		messages = append(messages, llm.AssistantToolCallMessage(response.Content, response.ToolCalls))

		for _, call := range response.ToolCalls {
			result, err := a.executor.Execute(ctx, call)
			if err != nil {
				return "", fmt.Errorf("tool call failed: %w", err)
			}
			a.logger.Debug().
				Str("tool", call.Name).
				Str("call_id", call.ID).
				Msg("tool executed")
			messages = append(messages, llm.ToolMessage(call.ID, string(result)))
		}
	}

	a.logger.Error().
		Int("max_rounds", a.config.MaxToolRounds).
		Msg("tool round cap exceeded")

	return "", ErrToolRoundsExceeded
}

// History returns a copy of the bounded transcript.
func (a *Agent) History() []llm.ChatMessage {
	return a.memory.History()
}
