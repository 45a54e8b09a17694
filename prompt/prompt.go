// Package prompt composes the system instruction for the persona agent.
package prompt

import (
	"fmt"
	"strings"

	"github.com/richinex/persona/intent"
)

// DefaultPersonName is used when no display name is configured.
const DefaultPersonName = "The site owner"

// NoContextPlaceholder stands in for retrieved excerpts when retrieval
// found nothing relevant.
const NoContextPlaceholder = "(No relevant excerpts found.)"

// Compose builds the system instruction from the static summary, the
// retrieved resume context, the represented person's name and the detected
// intent. Pure function: identical inputs yield identical output.
func Compose(summary, context, personName string, detected intent.Intent) string {
	person := personName
	if person == "" {
		person = DefaultPersonName
	}
	if strings.TrimSpace(context) == "" {
		context = NoContextPlaceholder
	}

	intentLine := ""
	if detected != "" {
		intentLine = fmt.Sprintf(
			"\nDetected user intent: %s. Use this to tailor your response (e.g. for 'contact', encourage sharing email; for 'resume_qa', focus on career context).\n",
			detected,
		)
	}

	return fmt.Sprintf(`You are acting as %[1]s. You are answering questions on %[1]s's website, particularly questions related to %[1]s's career, background, skills and experience. Your responsibility is to represent %[1]s for interactions on the website as faithfully as possible. You are given a summary and relevant excerpts from %[1]s's resume below. Use only this context to answer; if the answer is not in the context, use your record_unknown_question tool to record the question. Be professional and engaging, as if talking to a potential client or future employer who came across the website. If you don't know the answer to any question, use your record_unknown_question tool to record the question that you couldn't answer. If the user is engaging in discussion, try to steer them towards getting in touch via email; ask for their email and record it using your record_user_details tool.
%[2]s
## Summary
%[3]s

## Relevant context from resume
%[4]s

With this context, please chat with the user, always staying in character as %[1]s.`,
		person, intentLine, summary, context)
}
