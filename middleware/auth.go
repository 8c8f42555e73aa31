package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/models"
	"github.com/sharath018/event-management-backend/internal/response"
)

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the resolved user to the context.
func AuthMiddleware(authSvc Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c)
		if !ok {
			response.Abort(c, apperr.Unauthorized("Authorization header required (Bearer <token>)"))
			return
		}

		user, err := authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Abort(c, err)
			return
		}

		c.Set(auth.ContextUser, user)
		c.Set(auth.ContextUserID, user.ID)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is presented and lets
// anonymous requests through untouched.
func OptionalAuth(authSvc Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := auth.BearerToken(c); ok {
			if user, err := authSvc.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(auth.ContextUser, user)
				c.Set(auth.ContextUserID, user.ID)
			}
		}
		c.Next()
	}
}
