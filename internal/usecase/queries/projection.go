// Package queries derives presentation-ready facts from raw upstream records:
// temporal status, role-scoped ownership, popularity ranking, and distance
// annotations. The derivations are pure functions; the query services around
// them only fetch inputs and assemble views.
package queries

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gourmet-gateway/internal/domain/reservation"
	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/domain/venue"
)

type TemporalStatus string

const (
	StatusUpcoming  TemporalStatus = "upcoming"
	StatusCompleted TemporalStatus = "completed"
)

// StatusAt classifies a reservation instant against now. An instant equal to
// now still counts as upcoming.
func StatusAt(instant, now time.Time) TemporalStatus {
	if instant.Before(now) {
		return StatusCompleted
	}
	return StatusUpcoming
}

// ScopeToRole narrows the reservation collection to what the caller may see:
// administrators see everything, everyone else only records whose customer
// name equals the session username exactly (case-sensitive).
func ScopeToRole(role session.Role, username string, all []reservation.Reservation) []reservation.Reservation {
	if role.IsAdministrator() {
		return all
	}

	scoped := make([]reservation.Reservation, 0, len(all))
	for _, r := range all {
		if r.CustomerName == username {
			scoped = append(scoped, r)
		}
	}
	return scoped
}

// PopularityLimit caps the ranking for summary display.
const PopularityLimit = 10

type PopularVenue struct {
	VenueID      int64  `json:"venue_id"`
	Name         string `json:"name"`
	Reservations int    `json:"reservations"`
}

// RankByPopularity counts reservations per venue, discards venues without
// any, and returns at most the top ten sorted non-increasing by count. Ties
// keep the venue collection's original order.
func RankByPopularity(venues []venue.Venue, reservations []reservation.Reservation) []PopularVenue {
	counts := make(map[int64]int, len(venues))
	for _, r := range reservations {
		counts[r.VenueID]++
	}

	ranked := make([]PopularVenue, 0, len(venues))
	for _, v := range venues {
		if n := counts[v.ID]; n > 0 {
			ranked = append(ranked, PopularVenue{VenueID: v.ID, Name: v.Name, Reservations: n})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Reservations > ranked[j].Reservations
	})

	if len(ranked) > PopularityLimit {
		ranked = ranked[:PopularityLimit]
	}
	return ranked
}

// AverageRating is the mean venue rating rounded to one decimal place, 0 for
// an empty catalog.
func AverageRating(venues []venue.Venue) float64 {
	if len(venues) == 0 {
		return 0
	}
	var sum float64
	for _, v := range venues {
		sum += v.Rating
	}
	return math.Round(sum/float64(len(venues))*10) / 10
}

// venueNameIndex resolves venue names for reservation views, with a readable
// placeholder when a booking references a venue that no longer exists.
type venueNameIndex map[int64]string

func indexVenueNames(venues []venue.Venue) venueNameIndex {
	idx := make(venueNameIndex, len(venues))
	for _, v := range venues {
		idx[v.ID] = v.Name
	}
	return idx
}

func (idx venueNameIndex) nameFor(venueID int64) string {
	if name, ok := idx[venueID]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Venue (ID: %d)", venueID)
}
