// Package tools provides the agent's callable tool surface: two
// notification-backed operations the model may request during a turn.
//
// Information Hiding:
// - JSON schemas and argument decoding hidden behind Definitions/Execute
// - Notification and lead-log side effects hidden inside the executor
package tools

import "github.com/richinex/persona/llm"

// Tool names form a closed set; dispatch is an exhaustive switch in the
// executor rather than a name-keyed lookup, so adding a tool is a
// compile-visible change.
const (
	// NameRecordUserDetails records a user's offered contact details.
	NameRecordUserDetails = "record_user_details"
	// NameRecordUnknownQuestion records a question the agent could not answer.
	NameRecordUnknownQuestion = "record_unknown_question"
)

// Default values for optional user-detail fields.
const (
	defaultName  = "Name not provided"
	defaultNotes = "not provided"
)

// UserDetailsArgs are the decoded arguments of record_user_details.
type UserDetailsArgs struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// UnknownQuestionArgs are the decoded arguments of record_unknown_question.
type UnknownQuestionArgs struct {
	Question string `json:"question" validate:"required"`
}

// Definitions returns the tool declarations offered to the model on every
// call. Both schemas close their property sets: the model must not supply
// undeclared fields.
func Definitions() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Name:        NameRecordUserDetails,
			Description: "Use this tool to record that a user is interested in being in touch and provided an email address",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"email": map[string]interface{}{
						"type":        "string",
						"description": "The email address of this user",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "The user's name, if they provided it",
					},
					"notes": map[string]interface{}{
						"type":        "string",
						"description": "Any additional information about the conversation that's worth recording to give context",
					},
				},
				"required":             []string{"email"},
				"additionalProperties": false,
			},
		},
		{
			Name:        NameRecordUnknownQuestion,
			Description: "Always use this tool to record any question that couldn't be answered as you didn't know the answer",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"question": map[string]interface{}{
						"type":        "string",
						"description": "The question that couldn't be answered",
					},
				},
				"required":             []string{"question"},
				"additionalProperties": false,
			},
		},
	}
}
