package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/models"
)

// Context keys set by the auth middleware.
const (
	ContextUser     = "user"
	ContextUserID   = "user_id"
	ContextClientIP = "client_ip"
)

// CurrentUser returns the user attached by the auth middleware, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// CurrentUserID is "" for anonymous requests.
func CurrentUserID(c *gin.Context) string {
	if user, ok := CurrentUser(c); ok {
		return user.ID
	}
	return ""
}

// ClientIP returns the address recorded for audit entries.
func ClientIP(c *gin.Context) string {
	if ip := c.GetString(ContextClientIP); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
