package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/response"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📊 Stats - GET /stats
// @Summary Dashboard totals
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	st, err := h.Service.Get(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, st, "")
}
