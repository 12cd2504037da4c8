package api

import (
	"net/http"
	"strconv"

	"gourmet-gateway/internal/domain/venue"
	reqdto "gourmet-gateway/internal/handler/dto/request"
	"gourmet-gateway/internal/handler/middleware"
	"gourmet-gateway/internal/pkg/geo"
	"gourmet-gateway/internal/usecase/commands"
	"gourmet-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueQueries  queries.VenueQueries
	venueCommands commands.VenueCommands
}

func NewVenueHandler(venueQueries queries.VenueQueries, venueCommands commands.VenueCommands) *VenueHandler {
	return &VenueHandler{
		venueQueries:  venueQueries,
		venueCommands: venueCommands,
	}
}

// List returns the venue catalog, distance-annotated when the caller passes
// lat/lng query parameters. This read always renders something: an upstream
// outage is answered with the fallback catalog, labeled by data_source.
func (h *VenueHandler) List(c *gin.Context) {
	origin := parseOrigin(c)

	list, err := h.venueQueries.List(c.Request.Context(), middleware.GetSession(c), origin)
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *VenueHandler) Create(c *gin.Context) {
	var req reqdto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.venueCommands.Create(c.Request.Context(), middleware.GetSession(c), req.ToInput())
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.venueCommands.Update(c.Request.Context(), middleware.GetSession(c), id, req.ToInput())
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.venueCommands.Delete(c.Request.Context(), middleware.GetSession(c), id); err != nil {
		abortWithUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id",
		})
		return 0, false
	}
	return id, true
}

// parseOrigin reads optional lat/lng query parameters. Both must be present
// and inside coordinate range to count; otherwise views go unannotated.
func parseOrigin(c *gin.Context) *geo.Coordinate {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	if err := venue.ValidateCoordinate(lat, lng); err != nil {
		return nil
	}
	return &geo.Coordinate{Lat: lat, Lng: lng}
}
