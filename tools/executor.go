package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/richinex/persona/llm"
	"github.com/richinex/persona/notify"
	"github.com/richinex/persona/storage"
)

// Tool acknowledgments.
var (
	recordedOK  = json.RawMessage(`{"recorded": "ok"}`)
	emptyResult = json.RawMessage(`{}`)
)

// Executor runs model-requested tool calls. It is the only path by which
// the two recording operations are reachable.
type Executor struct {
	notifier notify.Notifier
	leads    *storage.LeadStore // optional, nil disables the local log
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewExecutor creates an executor. The lead store may be nil, in which
// case captured details are escalated via the notifier only.
func NewExecutor(notifier notify.Notifier, leads *storage.LeadStore, logger zerolog.Logger) *Executor {
	return &Executor{
		notifier: notifier,
		leads:    leads,
		validate: validator.New(),
		logger:   logger,
	}
}

// Execute dispatches one tool call and returns its JSON acknowledgment.
// Malformed or invalid arguments are an error: the model violated the
// declared schema and the turn cannot continue. Unknown tool names resolve
// to an empty object so the round trip stays alive.
func (e *Executor) Execute(ctx context.Context, call llm.ToolCall) (json.RawMessage, error) {
	switch call.Name {
	case NameRecordUserDetails:
		var args UserDetailsArgs
		if err := e.decode(call.Arguments, &args); err != nil {
			return nil, fmt.Errorf("%s: %w", call.Name, err)
		}
		return e.recordUserDetails(ctx, args)
	case NameRecordUnknownQuestion:
		var args UnknownQuestionArgs
		if err := e.decode(call.Arguments, &args); err != nil {
			return nil, fmt.Errorf("%s: %w", call.Name, err)
		}
		return e.recordUnknownQuestion(ctx, args)
	default:
		e.logger.Warn().Str("tool", call.Name).Msg("model requested unknown tool")
		return emptyResult, nil
	}
}

func (e *Executor) decode(raw json.RawMessage, args interface{}) error {
	if len(raw) == 0 {
		raw = emptyResult
	}
	if err := json.Unmarshal(raw, args); err != nil {
		return fmt.Errorf("malformed arguments: %w", err)
	}
	if err := e.validate.Struct(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (e *Executor) recordUserDetails(ctx context.Context, args UserDetailsArgs) (json.RawMessage, error) {
	if args.Name == "" {
		args.Name = defaultName
	}
	if args.Notes == "" {
		args.Notes = defaultNotes
	}

	e.logger.Info().
		Str("tool", NameRecordUserDetails).
		Str("email", args.Email).
		Msg("recording user details")

	text := fmt.Sprintf("Recording %s with email %s and notes %s", args.Name, args.Email, args.Notes)
	if err := e.notifier.Notify(ctx, text); err != nil {
		// The channel is fire-and-forget; the model must not see
		// transport flakiness.
		e.logger.Warn().Err(err).Msg("notification failed")
	}

	if e.leads != nil {
		if _, err := e.leads.SaveLead(ctx, args.Email, args.Name, args.Notes); err != nil {
			e.logger.Warn().Err(err).Msg("lead log write failed")
		}
	}

	return recordedOK, nil
}

func (e *Executor) recordUnknownQuestion(ctx context.Context, args UnknownQuestionArgs) (json.RawMessage, error) {
	e.logger.Info().
		Str("tool", NameRecordUnknownQuestion).
		Msg("recording unknown question")

	text := fmt.Sprintf("Recording %s", args.Question)
	if err := e.notifier.Notify(ctx, text); err != nil {
		e.logger.Warn().Err(err).Msg("notification failed")
	}

	if e.leads != nil {
		if _, err := e.leads.SaveUnknownQuestion(ctx, args.Question); err != nil {
			e.logger.Warn().Err(err).Msg("question log write failed")
		}
	}

	return recordedOK, nil
}
