package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/richinex/persona/llm"
	"github.com/richinex/persona/storage"
)

// recordingNotifier captures sent messages.
type recordingNotifier struct {
	messages []string
	err      error
}

func (n *recordingNotifier) Notify(_ context.Context, message string) error {
	n.messages = append(n.messages, message)
	return n.err
}

func newTestExecutor(t *testing.T, notifier *recordingNotifier) (*Executor, *storage.LeadStore) {
	t.Helper()
	store, err := storage.NewLeadStoreInMemory()
	if err != nil {
		t.Fatalf("failed to create lead store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewExecutor(notifier, store, zerolog.Nop()), store
}

func TestExecuteRecordUserDetails(t *testing.T) {
	notifier := &recordingNotifier{}
	exec, store := newTestExecutor(t, notifier)

	result, err := exec.Execute(context.Background(), llm.ToolCall{
		ID:        "call_1",
		Name:      NameRecordUserDetails,
		Arguments: json.RawMessage(`{"email":"jane@example.com","name":"Jane"}`),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if string(result) != `{"recorded": "ok"}` {
		t.Errorf("unexpected acknowledgment: %s", result)
	}

	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.messages))
	}
	want := "Recording Jane with email jane@example.com and notes not provided"
	if notifier.messages[0] != want {
		t.Errorf("notification = %q, want %q", notifier.messages[0], want)
	}

	leads, err := store.Leads(context.Background())
	if err != nil {
		t.Fatalf("Leads failed: %v", err)
	}
	if len(leads) != 1 || leads[0].Email != "jane@example.com" {
		t.Errorf("lead not logged: %+v", leads)
	}
}

func TestExecuteRecordUserDetailsDefaults(t *testing.T) {
	notifier := &recordingNotifier{}
	exec, _ := newTestExecutor(t, notifier)

	_, err := exec.Execute(context.Background(), llm.ToolCall{
		Name:      NameRecordUserDetails,
		Arguments: json.RawMessage(`{"email":"a@b.co"}`),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := "Recording Name not provided with email a@b.co and notes not provided"
	if notifier.messages[0] != want {
		t.Errorf("notification = %q, want %q", notifier.messages[0], want)
	}
}

func TestExecuteRecordUserDetailsMissingEmail(t *testing.T) {
	exec, _ := newTestExecutor(t, &recordingNotifier{})

	_, err := exec.Execute(context.Background(), llm.ToolCall{
		Name:      NameRecordUserDetails,
		Arguments: json.RawMessage(`{"name":"Jane"}`),
	})
	if err == nil {
		t.Error("expected error for missing required email")
	}
}

func TestExecuteRecordUnknownQuestion(t *testing.T) {
	notifier := &recordingNotifier{}
	exec, store := newTestExecutor(t, notifier)

	result, err := exec.Execute(context.Background(), llm.ToolCall{
		Name:      NameRecordUnknownQuestion,
		Arguments: json.RawMessage(`{"question":"What is your favorite color?"}`),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if string(result) != `{"recorded": "ok"}` {
		t.Errorf("unexpected acknowledgment: %s", result)
	}
	if notifier.messages[0] != "Recording What is your favorite color?" {
		t.Errorf("unexpected notification: %q", notifier.messages[0])
	}

	questions, err := store.UnknownQuestions(context.Background())
	if err != nil {
		t.Fatalf("UnknownQuestions failed: %v", err)
	}
	if len(questions) != 1 {
		t.Errorf("question not logged: %+v", questions)
	}
}

func TestExecuteUnknownToolEmptyResult(t *testing.T) {
	exec, _ := newTestExecutor(t, &recordingNotifier{})

	result, err := exec.Execute(context.Background(), llm.ToolCall{
		Name:      "send_rocket_to_mars",
		Arguments: json.RawMessage(`{"target":"mars"}`),
	})
	if err != nil {
		t.Fatalf("unknown tool must not error: %v", err)
	}
	if string(result) != `{}` {
		t.Errorf("expected empty object, got %s", result)
	}
}

func TestExecuteMalformedArguments(t *testing.T) {
	exec, _ := newTestExecutor(t, &recordingNotifier{})

	_, err := exec.Execute(context.Background(), llm.ToolCall{
		Name:      NameRecordUnknownQuestion,
		Arguments: json.RawMessage(`{"question":`),
	})
	if err == nil {
		t.Error("expected error for malformed JSON arguments")
	}
}

func TestExecuteNotifierFailureStillAcknowledges(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("pushover down")}
	exec, _ := newTestExecutor(t, notifier)

	result, err := exec.Execute(context.Background(), llm.ToolCall{
		Name:      NameRecordUnknownQuestion,
		Arguments: json.RawMessage(`{"question":"anything"}`),
	})
	if err != nil {
		t.Fatalf("notification failure must not fail the call: %v", err)
	}
	if string(result) != `{"recorded": "ok"}` {
		t.Errorf("unexpected acknowledgment: %s", result)
	}
}

func TestDefinitionsCloseProperties(t *testing.T) {
	defs := Definitions()
	if len(defs) != 2 {
		t.Fatalf("expected 2 tool definitions, got %d", len(defs))
	}
	for _, def := range defs {
		closed, ok := def.Parameters["additionalProperties"].(bool)
		if !ok || closed {
			t.Errorf("%s: additionalProperties must be false", def.Name)
		}
	}
}
