package queries

import (
	"context"

	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/domain/venue"
	"gourmet-gateway/internal/infra/gateway"
	"gourmet-gateway/internal/pkg/errs"
	"gourmet-gateway/internal/pkg/geo"

	"github.com/jinzhu/copier"
)

// VenueReader is the read side of the venue resource gateway.
type VenueReader interface {
	List(ctx context.Context, sess *session.Session) ([]venue.Venue, gateway.Source)
}

type VenueView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Cuisine   string  `json:"cuisine"`
	Rating    float64 `json:"rating"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// DistanceKm is set only when the caller supplied an origin, rounded to
	// one decimal place.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type VenueList struct {
	Items      []VenueView    `json:"items"`
	DataSource gateway.Source `json:"data_source"`
}

type VenueQueries interface {
	List(ctx context.Context, sess *session.Session, origin *geo.Coordinate) (*VenueList, error)
}

type venueQueriesImpl struct {
	venues VenueReader
}

func NewVenueQueries(venues VenueReader) VenueQueries {
	return &venueQueriesImpl{venues: venues}
}

func (q *venueQueriesImpl) List(ctx context.Context, sess *session.Session, origin *geo.Coordinate) (*VenueList, error) {
	venues, src := q.venues.List(ctx, sess)

	items := make([]VenueView, 0, len(venues))
	for _, v := range venues {
		var view VenueView
		if err := copier.Copy(&view, &v); err != nil {
			return nil, errs.Wrap(err, "project venue view")
		}
		if origin != nil {
			km := geo.RoundKm1(geo.Distance(*origin, geo.Coordinate{Lat: v.Latitude, Lng: v.Longitude}))
			view.DistanceKm = &km
		}
		items = append(items, view)
	}

	return &VenueList{Items: items, DataSource: src}, nil
}
