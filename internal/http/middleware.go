package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxUserKey = "current_user"

// RequestLogger tags every request with an id and logs method, path,
// status and latency after the handler chain runs.
func (h *Handler) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		h.deps.Logger.WithFields(map[string]any{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("request")
	}
}

// authenticate parses the bearer token, resolves the user and stashes it in
// the context. On failure it aborts the request and returns false; it never
// advances the handler chain itself, so callers can layer further checks.
func (h *Handler) authenticate(c *gin.Context) bool {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return false
	}

	subject, err := h.deps.Tokens.Verify(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return false
	}

	user, err := h.deps.Auth.ResolveSubject(c.Request.Context(), subject)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return false
	}
	if !user.IsActive {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account disabled"})
		return false
	}

	c.Set(ctxUserKey, user)
	return true
}

// requireUser authenticates the bearer token. Missing, malformed and
// expired tokens all read as 401.
func (h *Handler) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.authenticate(c) {
			return
		}
		c.Next()
	}
}

// requireAdmin is requireUser plus an admin check.
func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.authenticate(c) {
			return
		}
		if !currentUser(c).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
