package auditlog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/apperr"
	"github.com/sharath018/event-management-backend/internal/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAuditLogs handles GET /audit-logs
// @Summary Get audit logs
// @Description List audit entries newest first (admin only)
// @Tags AuditLog
// @Produce json
// @Param action query string false "Filter by action (partial match)"
// @Param status query string false "Filter by status"
// @Param event_id query string false "Filter by event ID"
// @Param limit query int false "Maximum number of entries (default: 50)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/audit-logs [get]
func (h *Handler) GetAuditLogs(c *gin.Context) {
	filter := Filter{
		Action:  c.Query("action"),
		Status:  c.Query("status"),
		EventID: c.Query("event_id"),
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			response.Fail(c, apperr.BadRequest("limit must be a positive integer"))
			return
		}
		filter.Limit = limit
	}

	logs, err := h.service.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, logs, "")
}
