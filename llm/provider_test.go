package llm

import (
	"encoding/json"
	"testing"
)

func TestParseProviderType(t *testing.T) {
	cases := map[string]ProviderType{
		"openai":    ProviderOpenAI,
		"gpt":       ProviderOpenAI,
		"Anthropic": ProviderAnthropic,
		"claude":    ProviderAnthropic,
		"deepseek":  ProviderDeepSeek,
		"google":    ProviderGemini,
		"gemini":    ProviderGemini,
	}
	for input, want := range cases {
		got, err := ParseProviderType(input)
		if err != nil {
			t.Fatalf("ParseProviderType(%q) failed: %v", input, err)
		}
		if got != want {
			t.Errorf("ParseProviderType(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseProviderTypeUnknown(t *testing.T) {
	if _, err := ParseProviderType("cohere"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDefaultModels(t *testing.T) {
	if ProviderOpenAI.DefaultModel() != ModelOpenAIGPT4oMini {
		t.Errorf("unexpected OpenAI default model: %s", ProviderOpenAI.DefaultModel())
	}
	if ProviderOpenAI.DefaultEmbeddingModel() != ModelOpenAIEmbedding3Small {
		t.Errorf("unexpected OpenAI embedding model: %s", ProviderOpenAI.DefaultEmbeddingModel())
	}
	if ProviderAnthropic.DefaultEmbeddingModel() != "" {
		t.Error("anthropic has no embeddings endpoint, expected empty default")
	}
}

func TestMessageConstructors(t *testing.T) {
	sys := SystemMessage("instructions")
	if sys.Role != RoleSystem || sys.Content != "instructions" {
		t.Errorf("unexpected system message: %+v", sys)
	}

	call := ToolCall{ID: "call_1", Name: "record_unknown_question", Arguments: json.RawMessage(`{"question":"?"}`)}
	asst := AssistantToolCallMessage("", []ToolCall{call})
	if asst.Role != RoleAssistant || len(asst.ToolCalls) != 1 {
		t.Errorf("unexpected assistant tool-call message: %+v", asst)
	}

	result := ToolMessage("call_1", `{"recorded":"ok"}`)
	if result.Role != RoleTool || result.ToolCallID != "call_1" {
		t.Errorf("unexpected tool message: %+v", result)
	}
}

func TestConvertToOpenAIMessagesToolRoundTrip(t *testing.T) {
	call := ToolCall{ID: "call_1", Name: "record_user_details", Arguments: json.RawMessage(`{"email":"a@b.co"}`)}
	messages := []ChatMessage{
		SystemMessage("prompt"),
		UserMessage("hi"),
		AssistantToolCallMessage("", []ToolCall{call}),
		ToolMessage("call_1", `{"recorded":"ok"}`),
	}

	converted := convertToOpenAIMessages(messages)
	if len(converted) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(converted))
	}
	if len(converted[2].ToolCalls) != 1 {
		t.Fatalf("assistant message lost its tool call")
	}
	if converted[2].ToolCalls[0].Function.Name != "record_user_details" {
		t.Errorf("unexpected tool name: %s", converted[2].ToolCalls[0].Function.Name)
	}
	if converted[3].ToolCallID != "call_1" {
		t.Errorf("tool result lost its call ID: %+v", converted[3])
	}
}

func TestConvertToOpenAIToolsEmpty(t *testing.T) {
	if convertToOpenAITools(nil) != nil {
		t.Error("expected nil tools for empty definitions")
	}
}

func TestConvertToAnthropicMessagesExtractsSystem(t *testing.T) {
	messages := []ChatMessage{
		SystemMessage("persona prompt"),
		UserMessage("hello"),
	}
	converted, system := convertToAnthropicMessages(messages)
	if system != "persona prompt" {
		t.Errorf("system prompt not extracted: %q", system)
	}
	if len(converted) != 1 {
		t.Errorf("expected 1 non-system message, got %d", len(converted))
	}
}
