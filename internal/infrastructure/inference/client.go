package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"resty.dev/v3"

	"peerweb/trader-api/internal/config"
	"peerweb/trader-api/internal/domain/assistant"
	"peerweb/trader-api/internal/infrastructure/metrics"
	"peerweb/trader-api/internal/infrastructure/observability"
	"peerweb/trader-api/internal/utils/httpclients"
	"peerweb/trader-api/internal/utils/platformerrors"
)

// Client talks to an OpenAI-compatible chat completion endpoint. A single
// client is shared by the assistant orchestrator and the mock-backed
// generation flows.
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		http:    httpclients.NewClient("model"),
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.ModelBaseURL), "/"),
		apiKey:  cfg.ModelAPIKey,
		model:   cfg.ModelName,
		timeout: cfg.ModelTimeout,
	}
}

// Configured reports whether a provider API key is present. Callers fall
// back to canned replies when it is not.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Generate runs one completion over the assembled turn window.
func (c *Client) Generate(ctx context.Context, req assistant.ModelRequest) (*assistant.ModelReply, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Turns)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, turn := range req.Turns {
		messages = append(messages, turnToMessages(turn)...)
	}

	tools := make([]openai.Tool, 0, len(req.Tools))
	for _, desc := range req.Tools {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        desc.Name,
				Description: desc.Description,
				Parameters:  desc.Parameters,
			},
		})
	}

	request := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		Tools:    tools,
	}

	response, err := c.createChatCompletion(ctx, "chat", request)
	if err != nil {
		return nil, err
	}

	choice := response.Choices[0]
	reply := &assistant.ModelReply{Text: choice.Message.Content}
	for _, call := range choice.Message.ToolCalls {
		reply.ToolRequests = append(reply.ToolRequests, assistant.ToolRequest{
			ID:   call.ID,
			Name: call.Function.Name,
			Args: json.RawMessage(call.Function.Arguments),
		})
	}
	return reply, nil
}

// GenerateText runs a plain text completion with an optional system prompt.
func (c *Client) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	var messages []openai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	response, err := c.createChatCompletion(ctx, "text", openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	return response.Choices[0].Message.Content, nil
}

// GenerateFromImage runs a vision completion over a data URI photo.
func (c *Client) GenerateFromImage(ctx context.Context, prompt, imageDataURI string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: imageDataURI,
						},
					},
				},
			},
		},
	}

	response, err := c.createChatCompletion(ctx, "vision", request)
	if err != nil {
		return "", err
	}
	return response.Choices[0].Message.Content, nil
}

// Ping checks the provider's model listing endpoint. Used by the
// background health probe.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.prepareRequest(ctx).Get(c.endpoint("/models"))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return c.errorFromResponse(ctx, resp, "model probe failed")
	}
	return nil
}

func (c *Client) createChatCompletion(ctx context.Context, kind string, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	ctx, span := observability.StartSpan(ctx, "trader-api", "ModelClient.CreateChatCompletion")
	defer span.End()
	observability.AddSpanAttributes(ctx,
		attribute.String("model.kind", kind),
		attribute.String("model.name", c.model),
		attribute.Int("model.message_count", len(request.Messages)),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	var respBody openai.ChatCompletionResponse
	resp, err := c.prepareRequest(ctx).
		SetBody(request).
		SetResult(&respBody).
		Post(c.endpoint("/chat/completions"))
	if err != nil {
		metrics.RecordModelRequest(kind, "error", time.Since(start).Seconds())
		observability.RecordError(ctx, err)
		return nil, err
	}
	if resp.IsError() {
		metrics.RecordModelRequest(kind, "error", time.Since(start).Seconds())
		respErr := c.errorFromResponse(ctx, resp, "completion request failed")
		observability.RecordError(ctx, respErr)
		return nil, respErr
	}
	if len(respBody.Choices) == 0 {
		metrics.RecordModelRequest(kind, "error", time.Since(start).Seconds())
		emptyErr := platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, "completion response has no choices", nil, "")
		observability.RecordError(ctx, emptyErr)
		return nil, emptyErr
	}
	metrics.RecordModelRequest(kind, "ok", time.Since(start).Seconds())
	return &respBody, nil
}

func (c *Client) prepareRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	if c.apiKey != "" {
		req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	return req
}

func (c *Client) endpoint(path string) string {
	if c.baseURL == "" {
		return path
	}
	return c.baseURL + path
}

func (c *Client) errorFromResponse(ctx context.Context, resp *resty.Response, message string) error {
	if resp == nil || resp.RawResponse == nil || resp.RawResponse.Body == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, message, nil, "")
	}
	defer resp.RawResponse.Body.Close()
	body, err := io.ReadAll(resp.RawResponse.Body)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, message, nil, "")
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, message, nil, "")
	}
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s: %s", message, trimmed), nil, "")
}

func turnToMessages(turn *assistant.Turn) []openai.ChatCompletionMessage {
	switch turn.Role {
	case assistant.TurnRoleUser:
		return []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: turn.TextContent(),
		}}
	case assistant.TurnRoleAssistant:
		msg := openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: turn.TextContent(),
		}
		for _, req := range turn.ToolRequests() {
			msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
				ID:   req.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      req.Name,
					Arguments: string(req.Args),
				},
			})
		}
		return []openai.ChatCompletionMessage{msg}
	case assistant.TurnRoleTool:
		responses := turn.ToolResponses()
		messages := make([]openai.ChatCompletionMessage, 0, len(responses))
		for _, resp := range responses {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(resp.Payload),
				ToolCallID: resp.RequestID,
			})
		}
		return messages
	default:
		return nil
	}
}
