package assistanthandler

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"peerweb/trader-api/internal/domain/assistant"
	"peerweb/trader-api/internal/infrastructure/observability"
	assistantrequests "peerweb/trader-api/internal/interfaces/httpserver/requests/assistant"
	assistantresponses "peerweb/trader-api/internal/interfaces/httpserver/responses/assistant"
)

// AssistantHandler handles assistant chat requests
type AssistantHandler struct {
	assistantService *assistant.Service
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *assistant.Service) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Chat runs one assistant turn for the caller. The orchestrator resolves
// every failure to displayable text, so this never returns an error.
func (h *AssistantHandler) Chat(
	ctx context.Context,
	caller assistant.Identity,
	req assistantrequests.ChatRequest,
) *assistantresponses.ChatResponse {
	ctx, span := observability.StartSpan(ctx, "trader-api", "AssistantHandler.Chat")
	defer span.End()

	observability.AddSpanAttributes(ctx,
		attribute.String("user.id", caller.ID),
		attribute.String("assistant.name", req.AssistantName),
		attribute.Int("chat.message_length", len(req.Message)),
	)

	result := h.assistantService.Invoke(ctx, assistant.InvokeInput{
		Message:       req.Message,
		AssistantName: req.AssistantName,
		Caller:        caller,
	})

	observability.AddSpanAttributes(ctx,
		attribute.Int("chat.response_length", len(result.Response)),
	)
	return &assistantresponses.ChatResponse{Response: result.Response}
}
