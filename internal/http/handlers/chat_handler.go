// README: Chat handler; one user message in, interpreted reply out.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"trippy/internal/ai"
	"trippy/internal/http/middleware"
	"trippy/internal/service"
	"trippy/internal/types"
)

type ChatHandler struct {
	assistant *service.Assistant
}

func NewChatHandler(assistant *service.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

type chatRequest struct {
	MessageID string       `json:"messageId"`
	Message   string       `json:"message"`
	History   []ai.Message `json:"history"`
}

// Send handles POST /api/chat.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}
	if req.MessageID == "" {
		req.MessageID = newMessageID()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	uid := types.ID(c.GetString(middleware.UIDKey))
	reply, err := h.assistant.HandleMessage(ctx, uid, req.MessageID, req.Message, req.History)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, reply)
}

func newMessageID() string {
	return "msg-" + time.Now().UTC().Format("20060102150405.000000000")
}
