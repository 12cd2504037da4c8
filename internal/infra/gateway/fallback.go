package gateway

import (
	"time"

	"gourmet-gateway/internal/domain/place"
	"gourmet-gateway/internal/domain/reservation"
	"gourmet-gateway/internal/domain/venue"
)

// Fixed fallback datasets for disconnected demo mode. Package-level data
// never escapes mutably: the accessors hand out fresh copies.

var fallbackVenues = []venue.Venue{
	{ID: 1, Name: "The Gourmet Kitchen", Address: "123 Main St, New York, NY", Cuisine: "Italian", Rating: 4.5, Latitude: 40.7128, Longitude: -74.0060},
	{ID: 2, Name: "Sushi Zen", Address: "456 Park Ave, New York, NY", Cuisine: "Japanese", Rating: 4.8, Latitude: 40.7589, Longitude: -73.9851},
	{ID: 3, Name: "Burger Joint", Address: "789 Broadway, New York, NY", Cuisine: "American", Rating: 4.2, Latitude: 40.7484, Longitude: -73.9857},
	{ID: 4, Name: "Taco Fiesta", Address: "101 5th Ave, New York, NY", Cuisine: "Mexican", Rating: 4.0, Latitude: 40.7359, Longitude: -73.9911},
	{ID: 5, Name: "Curry House", Address: "202 6th Ave, New York, NY", Cuisine: "Indian", Rating: 4.6, Latitude: 40.7259, Longitude: -74.0011},
}

// Reservation instants are fixed offsets from the clock at read time, so the
// demo data always contains both upcoming and completed bookings.
var fallbackReservationSpecs = []struct {
	id       int64
	venueID  int64
	customer string
	offset   time.Duration
}{
	{101, 1, "Alice Smith", 24 * time.Hour},
	{102, 2, "Bob Jones", 48 * time.Hour},
	{103, 1, "Charlie Brown", -time.Hour},
	{104, 3, "Diana Prince", 12 * time.Hour},
}

func float64Ptr(f float64) *float64 { return &f }

var fallbackPlaces = []place.Result{
	{ID: "p1", Name: "Central Park Cafe", Address: "Central Park, NY", Location: &place.Location{Latitude: 40.785091, Longitude: -73.968285}, Categories: []string{"cafe"}, DistanceMeters: float64Ptr(500)},
	{ID: "p2", Name: "Times Square Diner", Address: "Times Square, NY", Location: &place.Location{Latitude: 40.7580, Longitude: -73.9855}, Categories: []string{"restaurant"}, DistanceMeters: float64Ptr(1200)},
	{ID: "p3", Name: "Brooklyn Pizza", Address: "Brooklyn Bridge, NY", Location: &place.Location{Latitude: 40.7061, Longitude: -73.9969}, Categories: []string{"pizza"}, DistanceMeters: float64Ptr(3000)},
	{ID: "p4", Name: "Wall St. Coffee", Address: "Wall St, NY", Location: &place.Location{Latitude: 40.7074, Longitude: -74.0113}, Categories: []string{"coffee"}, DistanceMeters: float64Ptr(4500)},
}

// FallbackVenues returns a copy of the fixed demo venue catalog.
func FallbackVenues() []venue.Venue {
	out := make([]venue.Venue, len(fallbackVenues))
	copy(out, fallbackVenues)
	return out
}

// FallbackReservations returns the fixed demo bookings with instants anchored
// to now.
func FallbackReservations(now time.Time) []reservation.Reservation {
	out := make([]reservation.Reservation, 0, len(fallbackReservationSpecs))
	for _, spec := range fallbackReservationSpecs {
		out = append(out, reservation.Reservation{
			ID:           spec.id,
			VenueID:      spec.venueID,
			CustomerName: spec.customer,
			Time:         now.Add(spec.offset),
		})
	}
	return out
}

// FallbackPlaces returns a copy of the fixed demo search results.
func FallbackPlaces() []place.Result {
	out := make([]place.Result, len(fallbackPlaces))
	copy(out, fallbackPlaces)
	for i := range out {
		if out[i].Location != nil {
			loc := *out[i].Location
			out[i].Location = &loc
		}
		if out[i].DistanceMeters != nil {
			d := *out[i].DistanceMeters
			out[i].DistanceMeters = &d
		}
		out[i].Categories = append([]string(nil), out[i].Categories...)
	}
	return out
}
