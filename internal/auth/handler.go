package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/response"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// ===============================
// Signup
// ===============================

type signupReq struct {
	Name     string `json:"name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"secret123"`
}

// Signup handles POST /auth/signup
// @Summary Create a participant account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body signupReq true "Account details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("Invalid request body"))
		return
	}

	session, err := h.service.Signup(c.Request.Context(), SignupInput(req), ClientIP(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, session, "Signup successful")
}

// ===============================
// Login
// ===============================

type loginReq struct {
	Email    string `json:"email" example:"admin@local"`
	Password string `json:"password" example:"admin123"`
}

// Login handles POST /auth/login
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("Email and password are required"))
		return
	}

	session, err := h.service.Login(c.Request.Context(), LoginInput(req), ClientIP(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, session, "Login successful")
}

// ===============================
// Me
// ===============================

// Me handles GET /auth/me
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Fail(c, apperr.Unauthorized("Unauthorized"))
		return
	}
	response.OK(c, http.StatusOK, user.Public(), "")
}

// ===============================
// Logout
// ===============================

// Logout handles POST /auth/logout
// @Summary Revoke the presented token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	token, ok := BearerToken(c)
	if !ok {
		response.Fail(c, apperr.Unauthorized("Unauthorized"))
		return
	}
	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Logged out successfully")
}
