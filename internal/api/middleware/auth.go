package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// Context key under which the authenticated user is stored.
const CurrentUserKey = "current_user"

// SessionAuth resolves the session cookie to a user and injects it into
// the context. Requests without a live session are rejected with 401;
// a session pointing at a deleted account is destroyed server-side by
// the auth service, so the same 401 applies.
func SessionAuth(auth service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			response.Unauthorized(c, 10002, "authentication required")
			c.Abort()
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), sessionID)
		if err != nil {
			response.InternalError(c)
			c.Abort()
			return
		}
		if user == nil {
			response.Unauthorized(c, 10002, "authentication required")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
