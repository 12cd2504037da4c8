package api

import (
	"net/http"
	"strconv"

	"gourmet-gateway/internal/handler/middleware"
	"gourmet-gateway/internal/infra/gateway"
	"gourmet-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PlaceHandler struct {
	placeQueries queries.PlaceQueries
}

func NewPlaceHandler(placeQueries queries.PlaceQueries) *PlaceHandler {
	return &PlaceHandler{placeQueries: placeQueries}
}

// Search proxies a places search. The caller must supply a location; the
// radius defaults when absent or unparsable.
func (h *PlaceHandler) Search(c *gin.Context) {
	origin := parseOrigin(c)
	if origin == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "lat and lng query parameters are required",
		})
		return
	}

	radius := gateway.DefaultSearchRadiusMeters
	if radiusStr := c.Query("radius"); radiusStr != "" {
		if parsed, err := strconv.Atoi(radiusStr); err == nil && parsed > 0 {
			radius = parsed
		}
	}

	list, err := h.placeQueries.Search(c.Request.Context(), middleware.GetSession(c), c.Query("query"), *origin, radius)
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
