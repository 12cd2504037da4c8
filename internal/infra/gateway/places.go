package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"gourmet-gateway/internal/domain/place"
	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/pkg/geo"
)

// DefaultSearchRadiusMeters is applied when the caller does not constrain
// the search.
const DefaultSearchRadiusMeters = 5000

// Places is the resource gateway for the geospatial place search service.
type Places struct {
	client *Client
}

func NewPlaces(client *Client) *Places {
	return &Places{client: client}
}

// Search issues one provider query around origin. Like the other reads it
// fails soft: failures and empty result sets yield the fixed fallback places.
func (g *Places) Search(ctx context.Context, sess *session.Session, query string, origin geo.Coordinate, radiusMeters int) ([]place.Result, Source) {
	if radiusMeters <= 0 {
		radiusMeters = DefaultSearchRadiusMeters
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("location", fmt.Sprintf("%v,%v", origin.Lat, origin.Lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))

	resp, err := g.client.do(ctx, sess, http.MethodGet, "/places/search?"+params.Encode(), nil)
	if err != nil {
		g.client.logFallback("places", err)
		return FallbackPlaces(), SourceFallback
	}

	var results []place.Result
	if err := resp.decode(&results); err != nil {
		g.client.logFallback("places", err)
		return FallbackPlaces(), SourceFallback
	}
	if len(results) == 0 {
		g.client.logFallback("places", nil)
		return FallbackPlaces(), SourceFallback
	}
	return results, SourceLive
}
