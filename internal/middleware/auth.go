package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/boardvote/board-voting-api/internal/constants"
	apierrors "github.com/boardvote/board-voting-api/internal/errors"
	"github.com/boardvote/board-voting-api/internal/repository"
)

// RequireAuth resolves the "Authorization: Token <key>" header to a user.
// The check runs on every request; there is no session state. All failure
// modes respond 401 with only the message varying.
func RequireAuth(tokens repository.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Authorization header is missing")
			c.Abort()
			return
		}

		// Exactly two whitespace-separated parts: scheme and key.
		parts := strings.Fields(header)
		if len(parts) != 2 {
			apierrors.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}
		if !strings.EqualFold(parts[0], constants.AuthScheme) {
			apierrors.Unauthorized(c, "Invalid authorization type")
			c.Abort()
			return
		}

		token, err := tokens.FindByKey(parts[1])
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, token.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}
