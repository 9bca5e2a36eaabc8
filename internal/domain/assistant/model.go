package assistant

import "context"

// ModelRequest is a single completion request against the chat model.
type ModelRequest struct {
	System string
	Turns  []*Turn
	Tools  []ToolDescriptor
}

// ModelReply is the model's answer: free text, tool requests, or both.
// A reply without tool requests is final.
type ModelReply struct {
	Text         string
	ToolRequests []ToolRequest
}

// ModelClient abstracts the chat model provider. One client is constructed
// at startup and shared process-wide.
type ModelClient interface {
	Generate(ctx context.Context, req ModelRequest) (*ModelReply, error)
	Configured() bool
}
