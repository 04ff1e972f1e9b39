package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/authz"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// userFromContext pulls the user injected by SessionAuth. Returns nil
// when the middleware chain is misordered.
func userFromContext(c *gin.Context) *model.User {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// RequirePermission gates a mutation behind the authorization policy.
// The check runs before the handler, so a caller without the permission
// gets 403 even when the target row does not exist.
func RequirePermission(policy *authz.Policy, action authz.Action, kind authz.ResourceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := userFromContext(c)
		if user == nil {
			response.Unauthorized(c, 10002, "authentication required")
			c.Abort()
			return
		}
		if !policy.Can(user, action, kind) {
			response.Forbidden(c, 10003, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates user management on the administrator role itself;
// the permission table is not consulted.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := userFromContext(c)
		if user == nil {
			response.Unauthorized(c, 10002, "authentication required")
			c.Abort()
			return
		}
		if user.Role != model.RoleAdmin {
			response.Forbidden(c, 10003, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
