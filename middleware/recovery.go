package middleware

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/response"
)

// Recovery turns a panic into the generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("🔥 panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		response.Abort(c, apperr.Internal("Internal server error", fmt.Errorf("panic: %v", recovered)))
	})
}
