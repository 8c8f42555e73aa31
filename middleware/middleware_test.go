package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/models"
)

type fakeAuth map[string]*models.User

func (f fakeAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	if u, ok := f[token]; ok {
		return u, nil
	}
	return nil, apperr.Unauthorized("Invalid or expired token")
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	users := fakeAuth{
		"admin-token": {ID: "a1", Role: models.RoleAdmin},
		"user-token":  {ID: "u1", Role: models.RoleParticipant},
	}

	r := gin.New()
	r.Use(Recovery(), AuditMiddleware())
	r.GET("/admin", AuthMiddleware(users), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": auth.CurrentUserID(c)})
	})
	r.GET("/optional", OptionalAuth(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": auth.CurrentUserID(c), "ip": auth.ClientIP(c)})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func do(t *testing.T, r http.Handler, path, token string, headers map[string]string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	code, body := do(t, r, "/admin", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, body["success"])

	code, _ = do(t, r, "/admin", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body = do(t, r, "/admin", "user-token", nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Admin role required for this action", body["error"])

	code, body = do(t, r, "/admin", "admin-token", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "a1", body["user"])
}

func TestOptionalAuth(t *testing.T) {
	r := newRouter()

	code, body := do(t, r, "/optional", "bogus", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "", body["user"])
	assert.Equal(t, "203.0.113.7", body["ip"])

	_, body = do(t, r, "/optional", "user-token", nil)
	assert.Equal(t, "u1", body["user"])
}

func TestRecovery(t *testing.T) {
	code, body := do(t, newRouter(), "/panic", "", nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["error"])
}
