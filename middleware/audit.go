package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/auth"
)

// forwardedHeaders are consulted in order before falling back to RemoteAddr.
var forwardedHeaders = []string{"X-Real-Ip", "CF-Connecting-IP", "X-Forwarded"}

// AuditMiddleware extracts and stores IP address for audit logging
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextClientIP, getClientIP(c))
		c.Next()
	}
}

// getClientIP extracts the real client IP from proxy headers
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); isValidIP(ip) {
			return ip
		}
	}

	for _, h := range forwardedHeaders {
		if ip := strings.TrimSpace(c.GetHeader(h)); ip != "" && isValidIP(ip) {
			return ip
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}
