package event

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/response"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📄 List Events - GET /events
// @Summary List events
// @Tags Events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.Service.ListEvents(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, events, "")
}

// ===========================
// 🔍 Get Event - GET /events/:id
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id} [get]
func (h *Handler) GetEventByID(c *gin.Context) {
	e, err := h.Service.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, e, "")
}

// ===========================
// 🎯 Create Event - POST /events
// @Summary Create an event (admin)
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "Event"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("Invalid request body"))
		return
	}

	e, err := h.Service.CreateEvent(c.Request.Context(), &req, auth.CurrentUserID(c), auth.ClientIP(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, e, "Event created successfully")
}

// ===========================
// 🛠 Update Event - PUT /events/:id
// @Summary Update an event (admin)
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body EventRequest true "Event"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("Invalid request body"))
		return
	}

	e, err := h.Service.UpdateEvent(c.Request.Context(), c.Param("id"), &req, auth.CurrentUserID(c), auth.ClientIP(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, e, "Event updated successfully")
}

// ===========================
// 🗑 Delete Event - DELETE /events/:id
// @Summary Delete an event with its registrations and announcements (admin)
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.Service.DeleteEvent(c.Request.Context(), c.Param("id"), auth.CurrentUserID(c), auth.ClientIP(c)); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Event deleted successfully")
}
