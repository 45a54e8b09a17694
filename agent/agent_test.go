package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/richinex/persona/llm"
	"github.com/richinex/persona/memory"
	"github.com/richinex/persona/rag"
	"github.com/richinex/persona/tools"
)

// scriptedProvider replays canned responses and records every request.
type scriptedProvider struct {
	responses []llm.LLMResponse
	err       error
	requests  [][]llm.ChatMessage
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

func (p *scriptedProvider) ChatWithTools(_ context.Context, messages []llm.ChatMessage, _ []llm.ToolDefinition) (llm.LLMResponse, error) {
	copied := make([]llm.ChatMessage, len(messages))
	copy(copied, messages)
	p.requests = append(p.requests, copied)

	if p.err != nil {
		return llm.LLMResponse{}, p.err
	}
	call := len(p.requests) - 1
	if call >= len(p.responses) {
		// Replay the last response for providers that loop forever.
		call = len(p.responses) - 1
	}
	return p.responses[call], nil
}

// recordingNotifier captures escalated messages.
type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

// noopEmbedder fails if called; the tests run with an empty index so
// retrieval must short-circuit.
type noopEmbedder struct{ t *testing.T }

func (e noopEmbedder) Embed(context.Context, []string) ([][]float32, error) {
	e.t.Fatal("unexpected embedding call")
	return nil, nil
}

func newTestAgent(t *testing.T, provider *scriptedProvider, notifier *recordingNotifier, cfg Config) *Agent {
	t.Helper()
	if cfg.PersonName == "" {
		cfg.PersonName = "Ada Lovelace"
	}
	if cfg.Summary == "" {
		cfg.Summary = "A short bio."
	}
	return New(
		cfg,
		provider,
		rag.NewRetriever(noopEmbedder{t}, &rag.Index{}),
		tools.NewExecutor(notifier, nil, zerolog.Nop()),
		memory.New(memory.DefaultCapacity),
		zerolog.Nop(),
	)
}

func TestChatToolRoundTrip(t *testing.T) {
	provider := &scriptedProvider{
		responses: []llm.LLMResponse{
			{ToolCalls: []llm.ToolCall{{
				ID:        "call_1",
				Name:      tools.NameRecordUnknownQuestion,
				Arguments: json.RawMessage(`{"question":"What is your favorite color?"}`),
			}}},
			{Content: "  I don't know that, but I've noted it.\n"},
		},
	}
	notifier := &recordingNotifier{}
	a := newTestAgent(t, provider, notifier, Config{})

	got, err := a.Chat(context.Background(), "What is your favorite color?")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if got != "I don't know that, but I've noted it." {
		t.Errorf("unexpected final text: %q", got)
	}

	if len(provider.requests) != 2 {
		t.Fatalf("expected exactly one tool round-trip (2 model calls), got %d", len(provider.requests))
	}
	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.messages))
	}
	if notifier.messages[0] != "Recording What is your favorite color?" {
		t.Errorf("unexpected notification: %q", notifier.messages[0])
	}

	// Second request must carry the assistant tool-call turn followed by
	// the tool result keyed to its call ID.
	second := provider.requests[1]
	last, prev := second[len(second)-1], second[len(second)-2]
	if len(prev.ToolCalls) != 1 || prev.Role != llm.RoleAssistant {
		t.Errorf("assistant tool-call turn missing: %+v", prev)
	}
	if last.Role != llm.RoleTool || last.ToolCallID != "call_1" {
		t.Errorf("tool result missing or unkeyed: %+v", last)
	}
	if last.Content != `{"recorded": "ok"}` {
		t.Errorf("unexpected tool result content: %q", last.Content)
	}

	// Memory holds the user turn and the final assistant turn only.
	history := a.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 messages in memory, got %d", len(history))
	}
	if history[0].Role != llm.RoleUser || history[1].Role != llm.RoleAssistant {
		t.Errorf("unexpected memory roles: %+v", history)
	}
}

func TestChatDirectAnswer(t *testing.T) {
	provider := &scriptedProvider{
		responses: []llm.LLMResponse{{Content: "I started out in research engineering."}},
	}
	a := newTestAgent(t, provider, &recordingNotifier{}, Config{})

	got, err := a.Chat(context.Background(), "Tell me about your career")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if got != "I started out in research engineering." {
		t.Errorf("unexpected answer: %q", got)
	}
	if len(provider.requests) != 1 {
		t.Errorf("expected a single model call, got %d", len(provider.requests))
	}
}

func TestChatSystemPromptComposition(t *testing.T) {
	provider := &scriptedProvider{
		responses: []llm.LLMResponse{{Content: "ok"}},
	}
	a := newTestAgent(t, provider, &recordingNotifier{}, Config{
		PersonName: "Grace Hopper",
		Summary:    "Invented the compiler.",
	})

	if _, err := a.Chat(context.Background(), "hello"); err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	system := provider.requests[0][0]
	if system.Role != llm.RoleSystem {
		t.Fatalf("first message is not the system prompt: %+v", system)
	}
	if !strings.Contains(system.Content, "Grace Hopper") {
		t.Error("system prompt missing person name")
	}
	if !strings.Contains(system.Content, "Invented the compiler.") {
		t.Error("system prompt missing summary")
	}
	if !strings.Contains(system.Content, "(No relevant excerpts found.)") {
		t.Error("system prompt missing empty-context placeholder")
	}
}

func TestChatRoundCapExceeded(t *testing.T) {
	provider := &scriptedProvider{
		responses: []llm.LLMResponse{
			{ToolCalls: []llm.ToolCall{{
				ID:        "call_loop",
				Name:      tools.NameRecordUnknownQuestion,
				Arguments: json.RawMessage(`{"question":"again"}`),
			}}},
		},
	}
	a := newTestAgent(t, provider, &recordingNotifier{}, Config{MaxToolRounds: 2})

	_, err := a.Chat(context.Background(), "loop forever")
	if !errors.Is(err, ErrToolRoundsExceeded) {
		t.Fatalf("expected ErrToolRoundsExceeded, got %v", err)
	}
	// Cap of 2 tool rounds allows 3 model calls before giving up.
	if len(provider.requests) != 3 {
		t.Errorf("expected 3 model calls, got %d", len(provider.requests))
	}
}

func TestChatMalformedToolArgumentsFatal(t *testing.T) {
	provider := &scriptedProvider{
		responses: []llm.LLMResponse{
			{ToolCalls: []llm.ToolCall{{
				ID:        "call_bad",
				Name:      tools.NameRecordUnknownQuestion,
				Arguments: json.RawMessage(`{"question":`),
			}}},
		},
	}
	notifier := &recordingNotifier{}
	a := newTestAgent(t, provider, notifier, Config{})

	if _, err := a.Chat(context.Background(), "break the protocol"); err == nil {
		t.Fatal("expected error for malformed tool arguments")
	}
	if len(notifier.messages) != 0 {
		t.Errorf("no notification expected, got %v", notifier.messages)
	}
}

func TestChatModelErrorPropagates(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("rate limited")}
	a := newTestAgent(t, provider, &recordingNotifier{}, Config{})

	if _, err := a.Chat(context.Background(), "hello"); err == nil {
		t.Fatal("expected model error to propagate")
	}
}
