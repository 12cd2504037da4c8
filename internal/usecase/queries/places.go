package queries

import (
	"context"
	"math"

	"gourmet-gateway/internal/domain/place"
	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/infra/gateway"
	"gourmet-gateway/internal/pkg/errs"
	"gourmet-gateway/internal/pkg/geo"

	"github.com/jinzhu/copier"
)

// PlaceSearcher is the read side of the place search resource gateway.
type PlaceSearcher interface {
	Search(ctx context.Context, sess *session.Session, query string, origin geo.Coordinate, radiusMeters int) ([]place.Result, gateway.Source)
}

type PlaceView struct {
	ID         string          `json:"id,omitempty"`
	Name       string          `json:"name"`
	Address    string          `json:"address,omitempty"`
	Location   *place.Location `json:"location,omitempty"`
	Categories []string        `json:"categories,omitempty"`
	// DistanceMeters is the provider's precomputed distance when present,
	// otherwise derived from the search origin and the result's location.
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

type PlaceList struct {
	Items      []PlaceView    `json:"items"`
	DataSource gateway.Source `json:"data_source"`
}

type PlaceQueries interface {
	Search(ctx context.Context, sess *session.Session, query string, origin geo.Coordinate, radiusMeters int) (*PlaceList, error)
}

type placeQueriesImpl struct {
	places PlaceSearcher
}

func NewPlaceQueries(places PlaceSearcher) PlaceQueries {
	return &placeQueriesImpl{places: places}
}

func (q *placeQueriesImpl) Search(ctx context.Context, sess *session.Session, query string, origin geo.Coordinate, radiusMeters int) (*PlaceList, error) {
	results, src := q.places.Search(ctx, sess, query, origin, radiusMeters)

	items := make([]PlaceView, 0, len(results))
	for _, r := range results {
		var view PlaceView
		if err := copier.Copy(&view, &r); err != nil {
			return nil, errs.Wrap(err, "project place view")
		}
		if view.DistanceMeters == nil && r.Location != nil {
			km := geo.Distance(origin, geo.Coordinate{Lat: r.Location.Latitude, Lng: r.Location.Longitude})
			meters := math.Round(km * 1000)
			view.DistanceMeters = &meters
		}
		items = append(items, view)
	}

	return &PlaceList{Items: items, DataSource: src}, nil
}
