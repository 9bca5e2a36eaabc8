package assistant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainassistant "peerweb/trader-api/internal/domain/assistant"
	"peerweb/trader-api/internal/interfaces/httpserver/handlers/assistanthandler"
	"peerweb/trader-api/internal/interfaces/httpserver/middlewares"
	assistantrequests "peerweb/trader-api/internal/interfaces/httpserver/requests/assistant"
	"peerweb/trader-api/internal/interfaces/httpserver/responses"
	"peerweb/trader-api/internal/utils/platformerrors"
)

// AssistantRoute exposes the conversational assistant endpoint.
type AssistantRoute struct {
	assistantHandler *assistanthandler.AssistantHandler
}

func NewAssistantRoute(assistantHandler *assistanthandler.AssistantHandler) *AssistantRoute {
	return &AssistantRoute{assistantHandler: assistantHandler}
}

func (r *AssistantRoute) RegisterRouter(router gin.IRouter) {
	group := router.Group("/assistant")
	group.POST("/chat", r.PostChat)
}

// PostChat godoc
// @Summary Send a message to the assistant
// @Description Runs one assistant turn: the message is answered using the caller's persisted chat history and the assistant's tools. Always returns displayable text.
// @Tags Assistant API
// @Accept json
// @Produce json
// @Param request body assistantrequests.ChatRequest true "Chat request"
// @Success 200 {object} assistantresponses.ChatResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/assistant/chat [post]
func (r *AssistantRoute) PostChat(c *gin.Context) {
	var req assistantrequests.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid chat request", "")
		return
	}

	principal, _ := middlewares.PrincipalFromContext(c)
	caller := domainassistant.Identity{
		ID:    principal.ID,
		Email: principal.Email,
	}

	resp := r.assistantHandler.Chat(c.Request.Context(), caller, req)
	c.JSON(http.StatusOK, resp)
}
