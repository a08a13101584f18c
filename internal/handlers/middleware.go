package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequireBearer rejects requests whose Authorization header does not carry the
// expected bearer token. An empty token locks the route group entirely.
func RequireBearer(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			log.WithField("path", c.FullPath()).Warn("Rejected request: no token configured for this route")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "endpoint is not configured"})
			return
		}

		provided, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(provided)), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}

func RequirePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "payload is required"})
			return
		}
		c.Next()
	}
}
