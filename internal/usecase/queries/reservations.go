package queries

import (
	"context"
	"time"

	"gourmet-gateway/internal/domain/reservation"
	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/domain/venue"
	"gourmet-gateway/internal/infra/gateway"
	"gourmet-gateway/internal/pkg/clock"
	"gourmet-gateway/internal/usecase/shared"
)

// ReservationReader is the read side of the reservation resource gateway.
type ReservationReader interface {
	List(ctx context.Context, sess *session.Session) ([]reservation.Reservation, gateway.Source)
}

type ReservationView struct {
	ID           int64          `json:"id"`
	VenueID      int64          `json:"venue_id"`
	VenueName    string         `json:"venue_name"`
	CustomerName string         `json:"customer_name"`
	Time         time.Time      `json:"time"`
	Status       TemporalStatus `json:"status"`
}

type ReservationList struct {
	Items      []ReservationView `json:"items"`
	Role       session.Role      `json:"role"`
	DataSource gateway.Source    `json:"data_source"`
}

type ReservationQueries interface {
	// ListForViewer returns the reservations the session is allowed to see,
	// annotated with venue names and temporal status.
	ListForViewer(ctx context.Context, sess *session.Session) (*ReservationList, error)
}

type reservationQueriesImpl struct {
	venues       VenueReader
	reservations ReservationReader
	clock        clock.Clock
}

func NewReservationQueries(venues VenueReader, reservations ReservationReader, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		venues:       venues,
		reservations: reservations,
		clock:        clk,
	}
}

type venueFetch struct {
	venues []venue.Venue
	source gateway.Source
}

type reservationFetch struct {
	reservations []reservation.Reservation
	source       gateway.Source
}

func (q *reservationQueriesImpl) ListForViewer(ctx context.Context, sess *session.Session) (*ReservationList, error) {
	vf, rf := shared.Join2(ctx,
		func(ctx context.Context) venueFetch {
			v, src := q.venues.List(ctx, sess)
			return venueFetch{venues: v, source: src}
		},
		func(ctx context.Context) reservationFetch {
			r, src := q.reservations.List(ctx, sess)
			return reservationFetch{reservations: r, source: src}
		},
	)

	role := session.ResolveRole(sess)
	var username string
	if sess != nil {
		username = sess.Username
	}

	scoped := ScopeToRole(role, username, rf.reservations)
	names := indexVenueNames(vf.venues)
	now := q.clock.Now()

	items := make([]ReservationView, 0, len(scoped))
	for _, r := range scoped {
		items = append(items, ReservationView{
			ID:           r.ID,
			VenueID:      r.VenueID,
			VenueName:    names.nameFor(r.VenueID),
			CustomerName: r.CustomerName,
			Time:         r.Time,
			Status:       StatusAt(r.Time, now),
		})
	}

	return &ReservationList{Items: items, Role: role, DataSource: rf.source}, nil
}
