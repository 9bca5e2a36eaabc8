package assistant

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextAssembler builds the transcript handed to the model: the most
// recent window of stored turns, oldest first, with the incoming user turn
// appended last. It only ever reads from the store.
type ContextAssembler struct {
	repo   TurnRepository
	window int
	log    zerolog.Logger
}

func NewContextAssembler(repo TurnRepository, window int, log zerolog.Logger) *ContextAssembler {
	return &ContextAssembler{
		repo:   repo,
		window: window,
		log:    log.With().Str("component", "context-assembler").Logger(),
	}
}

// Assemble returns the context window for ownerID with incoming appended.
// A store failure degrades to an empty window so the caller still gets a
// stateless single-turn conversation.
func (a *ContextAssembler) Assemble(ctx context.Context, ownerID string, incoming *Turn) []*Turn {
	recent, err := a.repo.LoadRecent(ctx, ownerID, a.window)
	if err != nil {
		a.log.Warn().Err(err).Str("owner_id", ownerID).Msg("history load failed, degrading to empty window")
		recent = nil
	}
	window := make([]*Turn, 0, len(recent)+1)
	window = append(window, recent...)
	window = append(window, incoming)
	return window
}
