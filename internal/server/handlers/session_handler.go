package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenStore is the session-store slice the auth endpoints need.
type TokenStore interface {
	SaveToken(token string) error
	ClearToken() error
}

// SessionHandler manages the stored backend bearer token. Token issuance is
// the backend's business; this side only keeps the issued token.
type SessionHandler struct {
	store  TokenStore
	logger *zap.Logger
}

// NewSessionHandler constructs the session HTTP adapter.
func NewSessionHandler(store TokenStore, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{store: store, logger: logger}
}

type loginRequest struct {
	Token string `json:"token" binding:"required"`
}

// Login stores the bearer token for subsequent backend calls.
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.store.SaveToken(req.Token); err != nil {
		h.logger.Error("failed storing token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to store token"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Logout clears the stored token.
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.store.ClearToken(); err != nil {
		h.logger.Error("failed clearing token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to clear token"})
		return
	}

	c.Status(http.StatusNoContent)
}
