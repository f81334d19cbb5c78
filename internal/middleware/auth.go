package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tradeboard/internal/pkg"
	"tradeboard/internal/service"
)

// ContextUserIDKey is the only identity handlers need; everything else they
// look up from the store.
const ContextUserIDKey = "user_id"

func AuthMiddleware(tokens service.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			c.Abort()
			return
		}
		tokenStr := parts[1]

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			c.Abort()
			return
		}

		// The token must still match the server-side copy; logout and
		// re-login elsewhere both invalidate it.
		origin, err := tokens.GetUserToken(c.Request.Context(), claims.UserID)
		if err != nil || origin != tokenStr {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "session expired"})
			c.Abort()
			return
		}

		if err := tokens.ExtendUserToken(c.Request.Context(), claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
