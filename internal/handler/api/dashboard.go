package api

import (
	"net/http"

	"gourmet-gateway/internal/handler/middleware"
	"gourmet-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardQueries.Summary(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
