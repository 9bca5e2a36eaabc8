package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestAssembleAppendsIncomingLast(t *testing.T) {
	older, _ := NewUserTurn("user_1", "first")
	newer, _ := NewAssistantTextTurn("user_1", "second")
	repo := &mockTurnRepo{loadTurns: []*Turn{older, newer}}

	assembler := NewContextAssembler(repo, 20, zerolog.Nop())
	incoming, _ := NewUserTurn("user_1", "third")

	window := assembler.Assemble(context.Background(), "user_1", incoming)
	if len(window) != 3 {
		t.Fatalf("window length = %d, want 3", len(window))
	}
	if window[0] != older || window[1] != newer {
		t.Error("stored turns not in load order")
	}
	if window[2] != incoming {
		t.Error("incoming turn must be last")
	}
}

func TestAssembleDegradesOnLoadFailure(t *testing.T) {
	repo := &mockTurnRepo{loadErr: errors.New("connection refused")}

	assembler := NewContextAssembler(repo, 20, zerolog.Nop())
	incoming, _ := NewUserTurn("user_1", "hello")

	window := assembler.Assemble(context.Background(), "user_1", incoming)
	if len(window) != 1 || window[0] != incoming {
		t.Fatalf("expected bare incoming turn, got %d turns", len(window))
	}
}
