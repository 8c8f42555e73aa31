package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/response"
)

// RequireRole must run after AuthMiddleware. It lets the request through
// only when the user holds one of the allowed roles.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			response.Abort(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		response.Abort(c, apperr.Forbidden("Admin role required for this action"))
	}
}
