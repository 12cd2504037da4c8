package request

import "gourmet-gateway/internal/usecase/commands"

type VenueRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address"`
	Cuisine   string  `json:"cuisine"`
	Rating    float64 `json:"rating"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *VenueRequest) ToInput() commands.VenueInput {
	return commands.VenueInput{
		Name:      r.Name,
		Address:   r.Address,
		Cuisine:   r.Cuisine,
		Rating:    r.Rating,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}
