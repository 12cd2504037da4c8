package api

import (
	"net/http"

	reqdto "gourmet-gateway/internal/handler/dto/request"
	"gourmet-gateway/internal/handler/middleware"
	"gourmet-gateway/internal/usecase/commands"
	"gourmet-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationQueries  queries.ReservationQueries
	reservationCommands commands.ReservationCommands
}

func NewReservationHandler(reservationQueries queries.ReservationQueries, reservationCommands commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{
		reservationQueries:  reservationQueries,
		reservationCommands: reservationCommands,
	}
}

// List returns reservations scoped to the caller: administrators see the
// whole book, standard users only rows whose customer name matches their
// username exactly.
func (h *ReservationHandler) List(c *gin.Context) {
	list, err := h.reservationQueries.ListForViewer(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.reservationCommands.Create(c.Request.Context(), middleware.GetSession(c), req.ToInput())
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), middleware.GetSession(c), id); err != nil {
		abortWithUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
