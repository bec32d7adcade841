package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/service/agent"
)

// AgentHandler exposes the SQL-agent chat.
type AgentHandler struct {
	svc    *agent.Service
	logger *zap.Logger
}

// NewAgentHandler constructs the chat HTTP adapter.
func NewAgentHandler(svc *agent.Service, logger *zap.Logger) *AgentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AgentHandler{svc: svc, logger: logger}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Send forwards one user message to the agent and returns the reply.
func (h *AgentHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.svc.Send(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, agent.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}
		h.logger.Error("chat send failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "chat failed"})
		return
	}

	c.JSON(http.StatusOK, reply)
}

// History returns the persisted transcript.
func (h *AgentHandler) History(c *gin.Context) {
	transcript, err := h.svc.History()
	if err != nil {
		h.logger.Error("transcript load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load transcript"})
		return
	}
	c.JSON(http.StatusOK, transcript)
}

// Clear wipes the persisted transcript.
func (h *AgentHandler) Clear(c *gin.Context) {
	if err := h.svc.Clear(); err != nil {
		h.logger.Error("transcript clear failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to clear transcript"})
		return
	}
	c.Status(http.StatusNoContent)
}
