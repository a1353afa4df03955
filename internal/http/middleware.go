package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tzt-server/internal/auth"
	"tzt-server/internal/domain"
)

// claimsKey is the gin context key holding verified token claims.
const claimsKey = "authClaims"

// ClaimsFromContext returns the verified claims attached by Authorize.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// Authorize extracts and verifies a bearer token, attaching the decoded
// claims to the request context. It aborts with 401 when the token is
// missing, malformed, tampered with or expired.
func Authorize(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, "Authorization required to access this node.")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization required to access this node.")
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "Invalid or expired transmission token.")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RestrictTo allows only the given roles through. It must be composed
// after Authorize; a request without verified claims is rejected.
func RestrictTo(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			abortWithError(c, http.StatusForbidden, "Insufficient clearance level for this operation.")
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, "Insufficient clearance level for this operation.")
	}
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}
