package assistant

// ChatResponse carries the assistant's displayable reply.
type ChatResponse struct {
	Response string `json:"response"`
}
