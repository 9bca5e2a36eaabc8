package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"peerweb/trader-api/internal/infrastructure/metrics"
)

// Config carries the orchestration knobs.
type Config struct {
	DefaultAssistantName string
	MaxToolRounds        int
}

// Service orchestrates one assistant invocation: context assembly, model
// calls, tool execution rounds, and history persistence. It never returns
// an error to the transport layer; every failure path resolves to text.
type Service struct {
	repo      TurnRepository
	assembler *ContextAssembler
	registry  *Registry
	model     ModelClient
	cfg       Config
	log       zerolog.Logger
}

func NewService(
	repo TurnRepository,
	assembler *ContextAssembler,
	registry *Registry,
	model ModelClient,
	cfg Config,
	log zerolog.Logger,
) *Service {
	return &Service{
		repo:      repo,
		assembler: assembler,
		registry:  registry,
		model:     model,
		cfg:       cfg,
		log:       log.With().Str("component", "assistant-service").Logger(),
	}
}

// InvokeInput is one user message addressed to a named assistant persona.
type InvokeInput struct {
	Message       string
	AssistantName string
	Caller        Identity
}

// InvokeResult always carries displayable text.
type InvokeResult struct {
	Response string
}

// Invoke runs the full orchestration loop for a single user message.
// The user turn is persisted before the first model call; the final
// assistant turn is persisted before returning.
func (s *Service) Invoke(ctx context.Context, input InvokeInput) *InvokeResult {
	ownerID := input.Caller.ID
	assistantName := input.AssistantName
	if assistantName == "" {
		assistantName = s.cfg.DefaultAssistantName
	}

	userTurn, err := NewUserTurn(ownerID, input.Message)
	if err != nil {
		s.log.Error().Err(err).Msg("create user turn")
		metrics.RecordAssistantTurn(outcomeFallback)
		return &InvokeResult{Response: FallbackReply}
	}

	transcript := s.assembler.Assemble(ctx, ownerID, userTurn)

	if err := s.repo.Append(ctx, userTurn); err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("persist user turn")
	}

	if !s.model.Configured() {
		return s.finish(ctx, ownerID, UnconfiguredReply, outcomeUnconfigured)
	}

	system := personaPrompt(assistantName, input.Caller.Email)
	descriptors := s.registry.Descriptors()

	toolRounds := 0
	for {
		reply, err := s.model.Generate(ctx, ModelRequest{
			System: system,
			Turns:  transcript,
			Tools:  descriptors,
		})
		if err != nil {
			s.log.Error().Err(err).Str("owner_id", ownerID).Msg("model call failed")
			return s.finish(ctx, ownerID, FallbackReply, outcomeFallback)
		}

		requests := reply.ToolRequests
		if len(requests) == 0 {
			text := reply.Text
			outcome := outcomeOK
			if text == "" {
				s.log.Warn().Str("owner_id", ownerID).Msg("model returned empty reply")
				text = FallbackReply
				outcome = outcomeFallback
			}
			return s.finish(ctx, ownerID, text, outcome)
		}

		if toolRounds >= s.cfg.MaxToolRounds {
			s.log.Warn().
				Str("owner_id", ownerID).
				Int("max_rounds", s.cfg.MaxToolRounds).
				Msg("tool round cap exceeded")
			return s.finish(ctx, ownerID, FallbackReply, outcomeFallback)
		}
		toolRounds++

		requestTurn := s.persistToolRequestTurn(ctx, ownerID, reply)
		transcript = append(transcript, requestTurn)

		responses, denied := s.executeRequests(ctx, requests, input.Caller)
		if denied {
			return s.finish(ctx, ownerID, DenialReply, outcomeDenied)
		}

		responseTurn := s.persistToolResponseTurn(ctx, ownerID, responses)
		transcript = append(transcript, responseTurn)
	}
}

// executeRequests runs sibling tool requests concurrently and recombines
// the results in request order. Tool failures become error payloads fed
// back to the model; a missing identity aborts the whole turn.
func (s *Service) executeRequests(ctx context.Context, requests []ToolRequest, caller Identity) ([]ToolResponse, bool) {
	responses := make([]ToolResponse, len(requests))
	var denied atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			payload, err := s.registry.Execute(gctx, req, caller)
			if err != nil {
				if errors.Is(err, ErrUnauthenticated) {
					metrics.RecordToolCall(req.Name, "denied")
					denied.Store(true)
					return err
				}
				s.log.Warn().Err(err).Str("tool", req.Name).Msg("tool execution failed")
				metrics.RecordToolCall(req.Name, "error")
				payload = errorPayload(err)
			} else {
				metrics.RecordToolCall(req.Name, "ok")
			}
			responses[i] = ToolResponse{RequestID: req.ID, Payload: payload}
			return nil
		})
	}
	if err := g.Wait(); err != nil && denied.Load() {
		return nil, true
	}
	return responses, false
}

func (s *Service) persistToolRequestTurn(ctx context.Context, ownerID string, reply *ModelReply) *Turn {
	parts := make([]Part, 0, len(reply.ToolRequests)+1)
	if reply.Text != "" {
		parts = append(parts, NewTextPart(reply.Text))
	}
	for _, req := range reply.ToolRequests {
		parts = append(parts, NewToolRequestPart(req))
	}

	turn, err := NewTurn(ownerID, TurnRoleAssistant, parts)
	if err != nil {
		s.log.Error().Err(err).Msg("create tool request turn")
		return &Turn{OwnerID: ownerID, Role: TurnRoleAssistant, Parts: parts}
	}
	if err := s.repo.Append(ctx, turn); err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("persist tool request turn")
	}
	return turn
}

func (s *Service) persistToolResponseTurn(ctx context.Context, ownerID string, responses []ToolResponse) *Turn {
	parts := make([]Part, 0, len(responses))
	for _, resp := range responses {
		parts = append(parts, NewToolResponsePart(resp))
	}

	turn, err := NewTurn(ownerID, TurnRoleTool, parts)
	if err != nil {
		s.log.Error().Err(err).Msg("create tool response turn")
		return &Turn{OwnerID: ownerID, Role: TurnRoleTool, Parts: parts}
	}
	if err := s.repo.Append(ctx, turn); err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("persist tool response turn")
	}
	return turn
}

// Terminal outcomes of one invocation, recorded as the metric label.
const (
	outcomeOK           = "ok"
	outcomeFallback     = "fallback"
	outcomeDenied       = "denied"
	outcomeUnconfigured = "unconfigured"
)

// finish persists the visible assistant turn and returns its text. A
// failed write is retried once, then logged and swallowed so the caller
// still receives the reply.
func (s *Service) finish(ctx context.Context, ownerID, text, outcome string) *InvokeResult {
	metrics.RecordAssistantTurn(outcome)

	turn, err := NewAssistantTextTurn(ownerID, text)
	if err != nil {
		s.log.Error().Err(err).Msg("create assistant turn")
		return &InvokeResult{Response: text}
	}

	if err := s.repo.Append(ctx, turn); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("persist assistant turn failed, retrying")
		if err := s.repo.Append(ctx, turn); err != nil {
			s.log.Error().Err(err).Str("owner_id", ownerID).Msg("persist assistant turn failed twice, dropping")
		}
	}
	return &InvokeResult{Response: text}
}

func errorPayload(err error) json.RawMessage {
	payload, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		return json.RawMessage(`{"error":"tool execution failed"}`)
	}
	return payload
}
