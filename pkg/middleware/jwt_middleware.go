package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"pahunapath/pkg/utils"
)

// RevocationChecker reports whether a token id was logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

func JWTAuthMiddleware(issuer *utils.TokenIssuer, revoked RevocationChecker) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if revoked != nil {
			isLoggedOut, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				slog.Error("revocation lookup failed", "error", err, "trace_id", c.GetString("trace_id"))
				utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
				return
			}
			if isLoggedOut {
				utils.HandleServiceError(c, utils.ErrTokenRevoked)
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("Role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// RoleMiddleware lets the request through when the caller holds any of roles.
func RoleMiddleware(roles ...string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString("Role")

		if !slices.Contains(roles, role) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
