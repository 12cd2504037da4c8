package venue

import (
	"errors"
	"strings"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	ErrEmptyName         = errors.New("venue name is required")
	ErrInvalidRating     = errors.New("rating must be between 0 and 5")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Venue is a bookable restaurant. The backend assigns the identity; a zero ID
// means the venue has not been created remotely yet.
type Venue struct {
	ID        int64   `json:"id,omitempty"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Cuisine   string  `json:"cuisine"`
	Rating    float64 `json:"rating"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// New validates a venue prior to submission. The rating is validated, not
// clamped: out-of-range input is a caller bug, not something to paper over.
func New(name, address, cuisine string, rating, latitude, longitude float64) (Venue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Venue{}, ErrEmptyName
	}
	if rating < MinRating || rating > MaxRating {
		return Venue{}, ErrInvalidRating
	}
	if err := ValidateCoordinate(latitude, longitude); err != nil {
		return Venue{}, err
	}

	return Venue{
		Name:      name,
		Address:   strings.TrimSpace(address),
		Cuisine:   strings.TrimSpace(cuisine),
		Rating:    rating,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

func ValidateCoordinate(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}
