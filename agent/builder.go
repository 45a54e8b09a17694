// Agent composition from settings.
//
// Information Hiding:
// - Provider/embedder creation hidden
// - Document loading and index construction hidden
// - Notification channel and lead log wiring hidden

package agent

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/richinex/persona/config"
	"github.com/richinex/persona/document"
	"github.com/richinex/persona/llm"
	"github.com/richinex/persona/memory"
	"github.com/richinex/persona/notify"
	"github.com/richinex/persona/rag"
	"github.com/richinex/persona/storage"
	"github.com/richinex/persona/tools"
)

// Build assembles a ready-to-chat agent from settings: loads the summary
// and resume, builds the chunk index (embedding calls happen here, once),
// and wires the notification channel and optional lead log. The returned
// cleanup func closes the lead store; call it when done.
func Build(ctx context.Context, settings config.Settings, logger zerolog.Logger) (*Agent, func(), error) {
	provider, embedder, err := llm.FromEnv(settings.Provider, settings.ChatModel, settings.EmbeddingModel)
	if err != nil {
		return nil, nil, err
	}

	summary, err := document.LoadText(settings.SummaryPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading summary: %w", err)
	}
	resume, err := document.LoadText(settings.ResumePath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading resume: %w", err)
	}
	if resume == "" {
		logger.Warn().Str("path", settings.ResumePath).Msg("resume missing or empty, retrieval disabled")
	}

	index, err := rag.BuildIndex(ctx, embedder, resume, settings.ChunkSize)
	if err != nil {
		return nil, nil, fmt.Errorf("building chunk index: %w", err)
	}
	logger.Info().
		Int("chunks", index.Len()).
		Str("provider", provider.Name()).
		Str("model", provider.Model()).
		Msg("agent ready")

	var notifier notify.Notifier
	if pushoverNotifier, err := notify.NewPushoverFromEnv(); err == nil {
		notifier = pushoverNotifier
	} else {
		logger.Warn().Err(err).Msg("notifications disabled")
		notifier = notify.Noop{}
	}

	var leads *storage.LeadStore
	cleanup := func() {}
	if settings.LeadsDBPath != "" {
		leads, err = storage.OpenLeadStore(settings.LeadsDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening lead store: %w", err)
		}
		cleanup = func() { leads.Close() }
	}

	cfg := Config{
		PersonName:    settings.PersonName,
		Summary:       summary,
		TopK:          settings.TopK,
		MaxToolRounds: settings.MaxToolRounds,
	}

	a := New(
		cfg,
		provider,
		rag.NewRetriever(embedder, index),
		tools.NewExecutor(notifier, leads, logger),
		memory.New(settings.MemoryCapacity),
		logger,
	)
	return a, cleanup, nil
}
