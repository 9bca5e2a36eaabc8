package assistant

import (
	"context"
	"encoding/json"
	"time"

	"peerweb/trader-api/internal/utils/idgen"
)

// TurnRole identifies who produced a turn.
type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
	TurnRoleTool      TurnRole = "tool"
)

func ValidateTurnRole(input string) bool {
	switch TurnRole(input) {
	case TurnRoleUser, TurnRoleAssistant, TurnRoleTool:
		return true
	default:
		return false
	}
}

// PartType discriminates the content part union.
type PartType string

const (
	PartTypeText         PartType = "text"
	PartTypeToolRequest  PartType = "tool_request"
	PartTypeToolResponse PartType = "tool_response"
)

// ToolRequest is a model-issued request to execute a named tool.
type ToolRequest struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

// ToolResponse carries the payload produced for a prior tool request.
type ToolResponse struct {
	RequestID string          `json:"request_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Part is one element of a turn's ordered content. Exactly one of the
// pointers is set, matching Type.
type Part struct {
	Type         PartType      `json:"type"`
	Text         *string       `json:"text,omitempty"`
	ToolRequest  *ToolRequest  `json:"tool_request,omitempty"`
	ToolResponse *ToolResponse `json:"tool_response,omitempty"`
}

// NewTextPart creates a text content part
func NewTextPart(text string) Part {
	return Part{Type: PartTypeText, Text: &text}
}

// NewToolRequestPart creates a tool request content part
func NewToolRequestPart(req ToolRequest) Part {
	return Part{Type: PartTypeToolRequest, ToolRequest: &req}
}

// NewToolResponsePart creates a tool response content part
func NewToolResponsePart(resp ToolResponse) Part {
	return Part{Type: PartTypeToolResponse, ToolResponse: &resp}
}

// Turn is a single entry in an owner's chat history. Turns are append-only:
// once written they are never updated or deleted.
type Turn struct {
	ID        uint      `json:"-"`
	PublicID  string    `json:"id"`
	OwnerID   string    `json:"-"`
	Role      TurnRole  `json:"role"`
	Parts     []Part    `json:"parts"`
	CreatedAt time.Time `json:"created_at"`
}

// Renderable reports whether the turn carries text a client can display.
// Turns whose only content is tool traffic are history-internal.
func (t *Turn) Renderable() bool {
	for _, part := range t.Parts {
		if part.Type == PartTypeText && part.Text != nil && *part.Text != "" {
			return true
		}
	}
	return false
}

// TextContent concatenates the turn's text parts.
func (t *Turn) TextContent() string {
	var out string
	for _, part := range t.Parts {
		if part.Type == PartTypeText && part.Text != nil {
			out += *part.Text
		}
	}
	return out
}

// ToolRequests returns the tool request parts in order.
func (t *Turn) ToolRequests() []ToolRequest {
	var out []ToolRequest
	for _, part := range t.Parts {
		if part.Type == PartTypeToolRequest && part.ToolRequest != nil {
			out = append(out, *part.ToolRequest)
		}
	}
	return out
}

// ToolResponses returns the tool response parts in order.
func (t *Turn) ToolResponses() []ToolResponse {
	var out []ToolResponse
	for _, part := range t.Parts {
		if part.Type == PartTypeToolResponse && part.ToolResponse != nil {
			out = append(out, *part.ToolResponse)
		}
	}
	return out
}

// NewTurn creates a turn with a fresh public id.
func NewTurn(ownerID string, role TurnRole, parts []Part) (*Turn, error) {
	publicID, err := idgen.GenerateSecureID("turn", 16)
	if err != nil {
		return nil, err
	}
	return &Turn{
		PublicID:  publicID,
		OwnerID:   ownerID,
		Role:      role,
		Parts:     parts,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewUserTurn creates a user turn holding a single text part.
func NewUserTurn(ownerID, text string) (*Turn, error) {
	return NewTurn(ownerID, TurnRoleUser, []Part{NewTextPart(text)})
}

// NewAssistantTextTurn creates a renderable assistant turn.
func NewAssistantTextTurn(ownerID, text string) (*Turn, error) {
	return NewTurn(ownerID, TurnRoleAssistant, []Part{NewTextPart(text)})
}

// TurnRepository persists chat turns. Append is strictly additive;
// LoadRecent returns at most limit turns ordered oldest to newest, ties
// broken by insertion order.
type TurnRepository interface {
	Append(ctx context.Context, turn *Turn) error
	LoadRecent(ctx context.Context, ownerID string, limit int) ([]*Turn, error)
}
