package assistant

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTurnRenderable(t *testing.T) {
	empty := ""
	cases := []struct {
		name string
		turn Turn
		want bool
	}{
		{"text turn", Turn{Parts: []Part{NewTextPart("hello")}}, true},
		{"empty text", Turn{Parts: []Part{{Type: PartTypeText, Text: &empty}}}, false},
		{"tool request only", Turn{Parts: []Part{NewToolRequestPart(ToolRequest{ID: "c1", Name: "x"})}}, false},
		{"tool response only", Turn{Parts: []Part{NewToolResponsePart(ToolResponse{RequestID: "c1"})}}, false},
		{"mixed", Turn{Parts: []Part{NewToolRequestPart(ToolRequest{ID: "c1"}), NewTextPart("note")}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.turn.Renderable(); got != tc.want {
				t.Errorf("Renderable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTurnTextContentConcatenates(t *testing.T) {
	turn := Turn{Parts: []Part{
		NewTextPart("one "),
		NewToolRequestPart(ToolRequest{ID: "c1", Name: "x"}),
		NewTextPart("two"),
	}}
	if got := turn.TextContent(); got != "one two" {
		t.Errorf("TextContent() = %q", got)
	}
}

func TestTurnPartAccessorsKeepOrder(t *testing.T) {
	turn := Turn{Parts: []Part{
		NewToolRequestPart(ToolRequest{ID: "c1", Name: "first"}),
		NewToolRequestPart(ToolRequest{ID: "c2", Name: "second"}),
		NewToolResponsePart(ToolResponse{RequestID: "c1", Payload: json.RawMessage(`{}`)}),
	}}

	requests := turn.ToolRequests()
	if len(requests) != 2 || requests[0].Name != "first" || requests[1].Name != "second" {
		t.Fatalf("ToolRequests() = %+v", requests)
	}
	responses := turn.ToolResponses()
	if len(responses) != 1 || responses[0].RequestID != "c1" {
		t.Fatalf("ToolResponses() = %+v", responses)
	}
}

func TestNewTurnAssignsPublicID(t *testing.T) {
	turn, err := NewUserTurn("user_1", "hello")
	if err != nil {
		t.Fatalf("NewUserTurn: %v", err)
	}
	if !strings.HasPrefix(turn.PublicID, "turn") {
		t.Errorf("PublicID = %q, want turn prefix", turn.PublicID)
	}
	if turn.Role != TurnRoleUser || turn.TextContent() != "hello" {
		t.Errorf("unexpected turn: %+v", turn)
	}
	if turn.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestValidateTurnRole(t *testing.T) {
	for _, valid := range []string{"user", "assistant", "tool"} {
		if !ValidateTurnRole(valid) {
			t.Errorf("ValidateTurnRole(%q) = false", valid)
		}
	}
	if ValidateTurnRole("system") {
		t.Error("system is not a stored turn role")
	}
}
