package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/models"
	"github.com/sharath018/event-management-backend/internal/response"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 🎟 Register - POST /events/:id/register
// @Summary Register for an event
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body RegisterRequest true "Participant"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/events/{id}/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("Invalid request body"))
		return
	}

	reg, err := h.Service.Register(c.Request.Context(), c.Param("id"), &req, auth.CurrentUserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, reg, "Registration successful")
}

// ===========================
// 🔁 Update Status - PATCH /registrations/:id/status
// Admins may set any status. Other users may only reject (cancel) their
// own registration.
// @Summary Update a registration's status
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param body body StatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/registrations/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.InvalidStatus(msgInvalidStatus))
		return
	}
	if !models.ValidStatus(req.Status) {
		response.Fail(c, apperr.InvalidStatus(msgInvalidStatus))
		return
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Fail(c, apperr.Unauthorized("Unauthorized"))
		return
	}

	var (
		reg *models.Registration
		err error
	)
	switch {
	case user.IsAdmin():
		reg, err = h.Service.SetStatus(c.Request.Context(), c.Param("id"), req.Status, user.ID, auth.ClientIP(c))
	case req.Status == models.StatusRejected:
		reg, err = h.Service.CancelOwn(c.Request.Context(), c.Param("id"), user, auth.ClientIP(c))
	default:
		err = apperr.Forbidden("Admin role required for this action")
	}
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, reg, "Registration status updated")
}

// ===========================
// 🔍 Check Registration - GET /events/:id/check-registration?email=
// @Summary Look up a registration by email
// @Tags Registrations
// @Produce json
// @Param id path string true "Event ID"
// @Param email query string true "Registrant email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/events/{id}/check-registration [get]
func (h *Handler) CheckRegistration(c *gin.Context) {
	reg, err := h.Service.Check(c.Request.Context(), c.Param("id"), c.Query("email"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, reg, "")
}

// ===========================
// 📄 List Registrations - GET /events/:id/registrations
// @Summary List an event's registrations
// @Tags Registrations
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id}/registrations [get]
func (h *Handler) ListRegistrations(c *gin.Context) {
	regs, err := h.Service.ListByEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, regs, "")
}
