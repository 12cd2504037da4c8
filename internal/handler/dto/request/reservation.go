package request

import (
	"time"

	"gourmet-gateway/internal/usecase/commands"
)

type ReservationRequest struct {
	VenueID      int64     `json:"venue_id" binding:"required"`
	CustomerName string    `json:"customer_name"`
	Time         time.Time `json:"time" binding:"required"`
}

func (r *ReservationRequest) ToInput() commands.ReservationInput {
	return commands.ReservationInput{
		VenueID:      r.VenueID,
		CustomerName: r.CustomerName,
		Time:         r.Time,
	}
}
