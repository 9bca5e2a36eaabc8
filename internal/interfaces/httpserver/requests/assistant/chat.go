package assistant

// ChatRequest is one user message addressed to the assistant.
type ChatRequest struct {
	Message       string `json:"message" binding:"required"`
	AssistantName string `json:"assistant_name"`
}
