package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripvault/tripvault/internal/authz"
)

// RequireOperation creates a Gin middleware handler gating a route on the
// declarative policy table: the caller's role claim must be in the allowed
// set for the operation. Must run after AuthMiddleware.
func RequireOperation(op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		claims, ok := GetClaimsFromCtx(c.Request.Context())
		if !ok {
			logger.Error("Authorization check without authenticated caller", slog.String("operation", string(op)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !authz.Allowed(op, claims.Role) {
			logger.Warn("Operation forbidden for role",
				slog.String("operation", string(op)),
				slog.String("role", string(claims.Role)),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient privileges"})
			return
		}

		c.Next()
	}
}
