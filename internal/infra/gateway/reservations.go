package gateway

import (
	"context"
	"fmt"
	"net/http"

	"gourmet-gateway/internal/domain/reservation"
	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/pkg/clock"
)

// Reservations is the resource gateway for the reservation ledger service.
type Reservations struct {
	client *Client
	clock  clock.Clock
}

func NewReservations(client *Client, clk clock.Clock) *Reservations {
	return &Reservations{client: client, clock: clk}
}

// List fetches the reservation ledger, failing soft to the fixed fallback
// bookings (anchored to the current instant) on any failure or empty success.
func (g *Reservations) List(ctx context.Context, sess *session.Session) ([]reservation.Reservation, Source) {
	resp, err := g.client.do(ctx, sess, http.MethodGet, "/reservations", nil)
	if err != nil {
		g.client.logFallback("reservations", err)
		return FallbackReservations(g.clock.Now()), SourceFallback
	}

	var reservations []reservation.Reservation
	if err := resp.decode(&reservations); err != nil {
		g.client.logFallback("reservations", err)
		return FallbackReservations(g.clock.Now()), SourceFallback
	}
	if len(reservations) == 0 {
		g.client.logFallback("reservations", nil)
		return FallbackReservations(g.clock.Now()), SourceFallback
	}
	return reservations, SourceLive
}

func (g *Reservations) Create(ctx context.Context, sess *session.Session, r reservation.Reservation) (reservation.Reservation, error) {
	resp, err := g.client.do(ctx, sess, http.MethodPost, "/reservations", r)
	if err != nil {
		return reservation.Reservation{}, err
	}

	created := r
	if err := resp.decode(&created); err != nil {
		return reservation.Reservation{}, err
	}
	return created, nil
}

// Cancel removes a reservation. Reservations are never mutated in place;
// cancellation is the only write after creation.
func (g *Reservations) Cancel(ctx context.Context, sess *session.Session, id int64) error {
	_, err := g.client.do(ctx, sess, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), nil)
	return err
}
