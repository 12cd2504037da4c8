package gateway

import (
	"context"
	"fmt"
	"net/http"

	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/domain/venue"
)

// Venues is the resource gateway for the venue catalog service.
type Venues struct {
	client *Client
}

func NewVenues(client *Client) *Venues {
	return &Venues{client: client}
}

// List fetches the venue catalog. It fails soft: any transport failure,
// rejection, parse failure, or empty success yields the fixed fallback set,
// labeled as such. A non-empty live response is returned verbatim.
func (g *Venues) List(ctx context.Context, sess *session.Session) ([]venue.Venue, Source) {
	resp, err := g.client.do(ctx, sess, http.MethodGet, "/restaurants", nil)
	if err != nil {
		g.client.logFallback("venues", err)
		return FallbackVenues(), SourceFallback
	}

	var venues []venue.Venue
	if err := resp.decode(&venues); err != nil {
		g.client.logFallback("venues", err)
		return FallbackVenues(), SourceFallback
	}
	if len(venues) == 0 {
		g.client.logFallback("venues", nil)
		return FallbackVenues(), SourceFallback
	}
	return venues, SourceLive
}

// Create submits a new venue. The backend assigns the identity.
func (g *Venues) Create(ctx context.Context, sess *session.Session, v venue.Venue) (venue.Venue, error) {
	resp, err := g.client.do(ctx, sess, http.MethodPost, "/restaurants", v)
	if err != nil {
		return venue.Venue{}, err
	}

	var created venue.Venue
	if err := resp.decode(&created); err != nil {
		return venue.Venue{}, err
	}
	return created, nil
}

func (g *Venues) Update(ctx context.Context, sess *session.Session, id int64, v venue.Venue) (venue.Venue, error) {
	resp, err := g.client.do(ctx, sess, http.MethodPut, fmt.Sprintf("/restaurants/%d", id), v)
	if err != nil {
		return venue.Venue{}, err
	}

	updated := v
	updated.ID = id
	if err := resp.decode(&updated); err != nil {
		return venue.Venue{}, err
	}
	return updated, nil
}

func (g *Venues) Delete(ctx context.Context, sess *session.Session, id int64) error {
	_, err := g.client.do(ctx, sess, http.MethodDelete, fmt.Sprintf("/restaurants/%d", id), nil)
	return err
}
