package assistanthandler

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"peerweb/trader-api/internal/domain/assistant"
	assistantrequests "peerweb/trader-api/internal/interfaces/httpserver/requests/assistant"
)

type stubTurnRepo struct {
	appended int
}

func (s *stubTurnRepo) Append(_ context.Context, _ *assistant.Turn) error {
	s.appended++
	return nil
}

func (s *stubTurnRepo) LoadRecent(_ context.Context, _ string, _ int) ([]*assistant.Turn, error) {
	return nil, nil
}

type stubModel struct {
	reply string
}

func (s *stubModel) Generate(_ context.Context, _ assistant.ModelRequest) (*assistant.ModelReply, error) {
	return &assistant.ModelReply{Text: s.reply}, nil
}

func (s *stubModel) Configured() bool { return true }

func newTestHandler(repo *stubTurnRepo, model *stubModel) *AssistantHandler {
	log := zerolog.Nop()
	service := assistant.NewService(
		repo,
		assistant.NewContextAssembler(repo, 20, log),
		assistant.NewRegistry(),
		model,
		assistant.Config{DefaultAssistantName: "VEND-R", MaxToolRounds: 5},
		log,
	)
	return NewAssistantHandler(service)
}

func TestChatReturnsAssistantText(t *testing.T) {
	repo := &stubTurnRepo{}
	handler := newTestHandler(repo, &stubModel{reply: "all systems green"})

	resp := handler.Chat(
		context.Background(),
		assistant.Identity{ID: "user_1", Email: "runner@peerweb.net"},
		assistantrequests.ChatRequest{Message: "status?"},
	)

	if resp.Response != "all systems green" {
		t.Fatalf("response = %q", resp.Response)
	}
	if repo.appended != 2 {
		t.Errorf("persisted turns = %d, want 2", repo.appended)
	}
}

func TestChatEmitsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	handler := newTestHandler(&stubTurnRepo{}, &stubModel{reply: "ack"})
	handler.Chat(
		context.Background(),
		assistant.Identity{ID: "user_1", Email: "runner@peerweb.net"},
		assistantrequests.ChatRequest{Message: "ping", AssistantName: "ORACLE"},
	)

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended span count = %d", len(ended))
	}
	span := ended[0]
	if span.Name() != "AssistantHandler.Chat" {
		t.Errorf("span name = %q", span.Name())
	}

	attrs := make(map[string]string)
	for _, attr := range span.Attributes() {
		attrs[string(attr.Key)] = attr.Value.Emit()
	}
	if attrs["user.id"] != "user_1" {
		t.Errorf("user.id attribute = %q", attrs["user.id"])
	}
	if attrs["assistant.name"] != "ORACLE" {
		t.Errorf("assistant.name attribute = %q", attrs["assistant.name"])
	}
}
