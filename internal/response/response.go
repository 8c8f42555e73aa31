// Package response writes the uniform JSON envelope used by every endpoint:
// {success, data?, error?, message?, errors?}.
package response

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/apperr"
)

// OK writes a success envelope. The data key is always present so that
// lookups with no result serialize as null.
func OK(c *gin.Context, status int, data any, message string) {
	body := gin.H{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// Message writes a success envelope without data.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

// Fail translates err into an error envelope and status code.
func Fail(c *gin.Context, err error) {
	c.JSON(envelope(c, err))
}

// Abort is Fail for middleware: it stops the handler chain.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(envelope(c, err))
}

func envelope(c *gin.Context, err error) (int, gin.H) {
	ae := apperr.As(err)
	status := ae.Kind.Status()

	body := gin.H{"success": false, "error": ae.Error()}
	switch ae.Kind {
	case apperr.KindValidation:
		body["errors"] = ae.Fields
	case apperr.KindInternal:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, ae.Err)
	}
	if ae.Data != nil {
		body["data"] = ae.Data
	}
	return status, body
}
