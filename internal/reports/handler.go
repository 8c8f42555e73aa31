package reports

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

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
// 📥 Download Participants - GET /events/:id/download-participants
// @Summary Download an event's participants as xlsx (default) or pdf
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param format query string false "excel or pdf"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id}/download-participants [get]
func (h *Handler) DownloadParticipants(c *gin.Context) {
	file, err := h.Service.DownloadParticipants(
		c.Request.Context(),
		c.Param("id"),
		c.Query("format"),
		auth.CurrentUserID(c),
		auth.ClientIP(c),
	)
	if err != nil {
		response.Fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
