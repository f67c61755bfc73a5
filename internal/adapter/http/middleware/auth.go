package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/pkg/auth"
)

const UserIDKey = "x-user-id"

// JwtAuthMiddleware is the auth gate: it resolves the caller from the
// bearer token and aborts with 401 before any handler runs. Handlers
// trust the attached user id verbatim.
func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			helper.SendUnauthorized(c, "Unauthorized request")
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			helper.SendUnauthorized(c, "Unauthorized request")
			return
		}

		userID, err := auth.VerifyJwtToken(bearer[len("Bearer "):])

		if err != nil {
			slog.Info("Rejected token", "error", err)
			helper.SendUnauthorized(c, "Unauthorized request")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID reads the id the auth gate attached.
func CurrentUserID(c *gin.Context) int {
	return c.GetInt(UserIDKey)
}
