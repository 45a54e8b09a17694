package prompt

import (
	"strings"
	"testing"

	"github.com/richinex/persona/intent"
)

func TestComposeIncludesSections(t *testing.T) {
	got := Compose("A short bio.", "Excerpt one.", "Ada Lovelace", intent.ResumeQA)

	for _, want := range []string{
		"You are acting as Ada Lovelace.",
		"## Summary\nA short bio.",
		"## Relevant context from resume\nExcerpt one.",
		"Detected user intent: resume_qa.",
		"record_unknown_question",
		"record_user_details",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposeDefaultsPersonName(t *testing.T) {
	got := Compose("bio", "ctx", "", intent.General)
	if !strings.Contains(got, "You are acting as "+DefaultPersonName+".") {
		t.Error("default person name not applied")
	}
}

func TestComposeEmptyContextPlaceholder(t *testing.T) {
	got := Compose("bio", "", "Ada", intent.General)
	if !strings.Contains(got, NoContextPlaceholder) {
		t.Error("placeholder missing for empty context")
	}
	got = Compose("bio", "   ", "Ada", intent.General)
	if !strings.Contains(got, NoContextPlaceholder) {
		t.Error("placeholder missing for whitespace context")
	}
}

func TestComposeNoIntentLine(t *testing.T) {
	got := Compose("bio", "ctx", "Ada", "")
	if strings.Contains(got, "Detected user intent") {
		t.Error("intent line present for empty intent")
	}
}

func TestComposeIdempotent(t *testing.T) {
	a := Compose("bio", "ctx", "Ada", intent.Contact)
	b := Compose("bio", "ctx", "Ada", intent.Contact)
	if a != b {
		t.Error("identical inputs produced different prompts")
	}
}
