package handler

import (
	"net/http"
	"strings"

	"github.com/barrovivo/backend/internal/application/assistant"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatRequest is one message to the shopping assistant
type ChatRequest struct {
	Message string `json:"message"`
}

// AssistantHandler serves the product-search chat endpoint. Its wire shape
// is the flat {ok, text, products} contract the storefront widget expects,
// not the standard envelope.
type AssistantHandler struct {
	chat   *assistant.ChatService
	logger *zap.Logger
}

// NewAssistantHandler creates an AssistantHandler
func NewAssistantHandler(chat *assistant.ChatService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{chat: chat, logger: logger}
}

// Chat handles POST /usuario/api/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la petición inválido"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El mensaje no puede estar vacío"})
		return
	}

	reply, err := h.chat.Chat(c.Request.Context(), message)
	if err != nil {
		h.logger.Error("Assistant chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No pudimos procesar tu mensaje"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"text":     reply.Text,
		"products": reply.Products,
	})
}
