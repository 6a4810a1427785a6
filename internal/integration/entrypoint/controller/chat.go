package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantry-bot/backend/internal/application/usecase/conversation"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/dto"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/middleware"
)

// ChatController handles inbound conversation events.
type ChatController struct {
	handler *conversation.Handler
	gate    *middleware.AccessGate
}

// NewChatController creates a new chat controller instance.
func NewChatController(handler *conversation.Handler, gate *middleware.AccessGate) *ChatController {
	return &ChatController{
		handler: handler,
		gate:    gate,
	}
}

// HandleEvent handles POST /chat/events requests. The user ID travels in
// the event body, so the allow-list is checked here rather than in the
// header middleware.
func (c *ChatController) HandleEvent(ctx *gin.Context) {
	var req dto.ChatEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if !c.gate.Allows(req.UserID) {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error: "User is not allowed",
		})
		return
	}

	reply := c.handler.HandleEvent(ctx.Request.Context(), conversation.Event{
		UserID: req.UserID,
		Text:   req.Text,
		Token:  req.Token,
	})

	ctx.JSON(http.StatusOK, dto.ToChatReplyResponse(reply))
}
