package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/boardvote/board-voting-api/internal/errors"
	"github.com/boardvote/board-voting-api/internal/repository"
)

// RequireAdmin gates admin-only operations on the caller's profile flag.
// It runs before any payload validation, so non-admins always see 403. A
// missing profile row is an authentication failure, matching the pairing
// invariant of users and profiles.
func RequireAdmin(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		profile, err := users.FindProfileByUserID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Unauthorized(c, "User profile does not exist")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		if !profile.IsAdmin {
			apierrors.Forbidden(c, "Only admins can perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}
