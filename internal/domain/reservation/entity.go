package reservation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingVenue        = errors.New("reservation requires a venue")
	ErrEmptyCustomerName   = errors.New("customer name is required")
	ErrZeroReservationTime = errors.New("reservation time is required")
)

// Reservation is a booking against a venue. Records are immutable once
// created: the lifecycle is create then cancel, never edit.
//
// CustomerName doubles as the ownership key for non-admin views. A stable
// user identifier would be the right key; the reservation ledger only stores
// the display name, so that is what scoping matches on.
type Reservation struct {
	ID           int64     `json:"id,omitempty"`
	VenueID      int64     `json:"restaurantId"`
	CustomerName string    `json:"customerName"`
	Time         time.Time `json:"reservationTime"`
}

func New(venueID int64, customerName string, at time.Time) (Reservation, error) {
	if venueID <= 0 {
		return Reservation{}, ErrMissingVenue
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return Reservation{}, ErrEmptyCustomerName
	}
	if at.IsZero() {
		return Reservation{}, ErrZeroReservationTime
	}

	return Reservation{
		VenueID:      venueID,
		CustomerName: customerName,
		Time:         at,
	}, nil
}
