package inference

import (
	"encoding/json"
	"testing"

	"github.com/sashabaranov/go-openai"

	"peerweb/trader-api/internal/domain/assistant"
)

func TestTurnToMessagesUser(t *testing.T) {
	turn := &assistant.Turn{
		Role:  assistant.TurnRoleUser,
		Parts: []assistant.Part{assistant.NewTextPart("what do I own?")},
	}

	messages := turnToMessages(turn)
	if len(messages) != 1 {
		t.Fatalf("message count = %d", len(messages))
	}
	if messages[0].Role != openai.ChatMessageRoleUser || messages[0].Content != "what do I own?" {
		t.Errorf("unexpected message: %+v", messages[0])
	}
}

func TestTurnToMessagesAssistantWithToolCalls(t *testing.T) {
	turn := &assistant.Turn{
		Role: assistant.TurnRoleAssistant,
		Parts: []assistant.Part{
			assistant.NewToolRequestPart(assistant.ToolRequest{
				ID:   "call_1",
				Name: "listInventoryItems",
				Args: json.RawMessage(`{}`),
			}),
		},
	}

	messages := turnToMessages(turn)
	if len(messages) != 1 {
		t.Fatalf("message count = %d", len(messages))
	}
	msg := messages[0]
	if msg.Role != openai.ChatMessageRoleAssistant {
		t.Errorf("role = %q", msg.Role)
	}
	if len(msg.ToolCalls) != 1 {
		t.Fatalf("tool call count = %d", len(msg.ToolCalls))
	}
	call := msg.ToolCalls[0]
	if call.ID != "call_1" || call.Function.Name != "listInventoryItems" || call.Function.Arguments != "{}" {
		t.Errorf("unexpected tool call: %+v", call)
	}
}

func TestTurnToMessagesToolFansOut(t *testing.T) {
	turn := &assistant.Turn{
		Role: assistant.TurnRoleTool,
		Parts: []assistant.Part{
			assistant.NewToolResponsePart(assistant.ToolResponse{RequestID: "call_1", Payload: json.RawMessage(`{"a":1}`)}),
			assistant.NewToolResponsePart(assistant.ToolResponse{RequestID: "call_2", Payload: json.RawMessage(`{"b":2}`)}),
		},
	}

	messages := turnToMessages(turn)
	if len(messages) != 2 {
		t.Fatalf("each tool response must become its own message, got %d", len(messages))
	}
	if messages[0].Role != openai.ChatMessageRoleTool || messages[0].ToolCallID != "call_1" {
		t.Errorf("unexpected first message: %+v", messages[0])
	}
	if messages[1].ToolCallID != "call_2" || messages[1].Content != `{"b":2}` {
		t.Errorf("unexpected second message: %+v", messages[1])
	}
}

func TestEndpointJoinsBaseURL(t *testing.T) {
	client := &Client{baseURL: "https://models.peerweb.net/v1"}
	if got := client.endpoint("/chat/completions"); got != "https://models.peerweb.net/v1/chat/completions" {
		t.Errorf("endpoint = %q", got)
	}

	bare := &Client{}
	if got := bare.endpoint("/models"); got != "/models" {
		t.Errorf("endpoint = %q", got)
	}
}

func TestConfigured(t *testing.T) {
	if (&Client{}).Configured() {
		t.Error("client without api key must report unconfigured")
	}
	if !(&Client{apiKey: "sk-test"}).Configured() {
		t.Error("client with api key must report configured")
	}
}
