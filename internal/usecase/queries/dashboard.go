package queries

import (
	"context"

	"gourmet-gateway/internal/domain/reservation"
	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/domain/venue"
	"gourmet-gateway/internal/infra/gateway"
	"gourmet-gateway/internal/usecase/shared"
)

type DashboardSummary struct {
	TotalVenues       int            `json:"total_venues"`
	TotalReservations int            `json:"total_reservations"`
	AverageRating     float64        `json:"average_rating"`
	Popular           []PopularVenue `json:"popular"`
	Role              session.Role   `json:"role"`
	VenueSource       gateway.Source `json:"venue_data_source"`
	ReservationSource gateway.Source `json:"reservation_data_source"`
}

type DashboardQueries interface {
	Summary(ctx context.Context, sess *session.Session) (*DashboardSummary, error)
}

type dashboardQueriesImpl struct {
	venues       VenueReader
	reservations ReservationReader
}

func NewDashboardQueries(venues VenueReader, reservations ReservationReader) DashboardQueries {
	return &dashboardQueriesImpl{venues: venues, reservations: reservations}
}

// Summary aggregates both catalogs concurrently. Reservation totals and the
// popularity ranking cover the full ledger regardless of role: the summary
// is system-wide analytics, and non-admin callers receive the same counts
// the admin dashboard shows.
func (q *dashboardQueriesImpl) Summary(ctx context.Context, sess *session.Session) (*DashboardSummary, error) {
	type vres struct {
		items []venue.Venue
		src   gateway.Source
	}
	type rres struct {
		items []reservation.Reservation
		src   gateway.Source
	}

	v, r := shared.Join2(ctx,
		func(ctx context.Context) vres {
			items, src := q.venues.List(ctx, sess)
			return vres{items: items, src: src}
		},
		func(ctx context.Context) rres {
			items, src := q.reservations.List(ctx, sess)
			return rres{items: items, src: src}
		},
	)

	return &DashboardSummary{
		TotalVenues:       len(v.items),
		TotalReservations: len(r.items),
		AverageRating:     AverageRating(v.items),
		Popular:           RankByPopularity(v.items, r.items),
		Role:              session.ResolveRole(sess),
		VenueSource:       v.src,
		ReservationSource: r.src,
	}, nil
}
