// README: Firebase bearer-token auth; falls back to a dev identity when no verifier is configured.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trippy/internal/infra"
)

// UIDKey is the gin context key under which the authenticated user ID is stored.
const UIDKey = "uid"

// Auth verifies the Authorization bearer token and stores the Firebase UID in
// the request context. With a nil verifier (local development without
// credentials) it trusts the X-User-ID header and defaults to "dev".
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			uid := strings.TrimSpace(c.GetHeader("X-User-ID"))
			if uid == "" {
				uid = "dev"
			}
			c.Set(UIDKey, uid)
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(UIDKey, token.UID)
		c.Next()
	}
}
