// README: Chat and smart-search endpoints.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripagent/internal/chat"
)

// turnTimeout bounds one whole chat turn, covering intent extraction, the
// collaborator search, and the conversational provider call.
const turnTimeout = 30 * time.Second

type ChatHandler struct {
	chat *chat.Service
}

func NewChatHandler(chatSvc *chat.Service) *ChatHandler {
	return &ChatHandler{chat: chatSvc}
}

type chatRequest struct {
	Message             string         `json:"message"`
	ConversationHistory []chat.Message `json:"conversation_history"`
	UserID              string         `json:"user_id"`
}

// Chat handles POST /api/chat. The pipeline never fails a turn, so the only
// error responses here are for malformed requests.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	resp := h.chat.Respond(ctx, chat.Request{
		Message: req.Message,
		History: req.ConversationHistory,
		UserID:  strings.TrimSpace(req.UserID),
		Token:   bearerToken(c),
	})
	writeJSON(c, http.StatusOK, resp)
}

// SmartSearch handles POST /api/search: rule-based parse plus a raw
// collaborator search, bypassing the generative provider entirely.
func (h *ChatHandler) SmartSearch(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	parsed, results, err := h.chat.SmartSearch(ctx, req.Message)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "search failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"success": true,
		"type":    parsed.Kind,
		"results": results,
		"params":  parsed.Params,
	})
}

// DebugIntent handles GET /api/debug/search-intent?message=...; it exposes
// the rule-based extraction for troubleshooting.
func (h *ChatHandler) DebugIntent(c *gin.Context) {
	message := c.Query("message")
	if strings.TrimSpace(message) == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}
	parsed := h.chat.ParseIntent(message)
	writeJSON(c, http.StatusOK, gin.H{
		"message":   message,
		"extracted": parsed,
		"type":      parsed.Kind,
		"params":    parsed.Params,
	})
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
