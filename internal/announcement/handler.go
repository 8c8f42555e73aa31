package announcement

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

type announcementReq struct {
	Message string `json:"message" example:"Doors open at 6pm."`
}

// List handles GET /events/:id/announcements
// @Summary List an event's announcements
// @Tags Announcements
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id}/announcements [get]
func (h *Handler) List(c *gin.Context) {
	anns, err := h.Service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, anns, "")
}

// Create handles POST /events/:id/announcements
// @Summary Send an announcement to an event's participants (admin)
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body announcementReq true "Announcement"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id}/announcements [post]
func (h *Handler) Create(c *gin.Context) {
	var req announcementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperr.BadRequest("Invalid request body"))
		return
	}

	res, err := h.Service.Create(c.Request.Context(), c.Param("id"), req.Message, auth.CurrentUserID(c), auth.ClientIP(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, res.Announcement, res.SummaryMessage())
}
