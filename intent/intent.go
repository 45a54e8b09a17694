// Package intent labels user messages with a coarse purpose to steer
// prompt composition. Classification is lexical and deterministic.
package intent

import "strings"

// Intent is a coarse classification of a user message's purpose.
type Intent string

const (
	// Contact marks lead-capture messages: the user wants to get in touch.
	Contact Intent = "contact"
	// ResumeQA marks questions about career, skills or experience.
	ResumeQA Intent = "resume_qa"
	// General is everything else.
	General Intent = "general"
)

// Contact keywords outrank resume keywords: a message mentioning both
// "job" and "email" is a lead, not a resume question.
var contactKeywords = []string{
	"email",
	"contact",
	"reach",
	"touch",
	"hire",
	"reach out",
	"get in touch",
	"connect",
}

var resumeKeywords = []string{
	"experience",
	"skill",
	"job",
	"resume",
	"career",
	"work",
	"education",
	"project",
	"role",
	"company",
	"linkedin",
}

// Classify returns the intent label for a user message. Empty or
// whitespace-only input is General.
func Classify(message string) Intent {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return General
	}

	for _, kw := range contactKeywords {
		if strings.Contains(lower, kw) {
			return Contact
		}
	}
	for _, kw := range resumeKeywords {
		if strings.Contains(lower, kw) {
			return ResumeQA
		}
	}
	return General
}
