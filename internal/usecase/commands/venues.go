package commands

import (
	"context"

	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/domain/venue"
	"gourmet-gateway/internal/pkg/errs"
)

// VenueWriter is the mutation slice of the venue resource gateway.
type VenueWriter interface {
	Create(ctx context.Context, sess *session.Session, v venue.Venue) (venue.Venue, error)
	Update(ctx context.Context, sess *session.Session, id int64, v venue.Venue) (venue.Venue, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
}

type VenueInput struct {
	Name      string
	Address   string
	Cuisine   string
	Rating    float64
	Latitude  float64
	Longitude float64
}

type VenueCommands interface {
	Create(ctx context.Context, sess *session.Session, input VenueInput) (venue.Venue, error)
	Update(ctx context.Context, sess *session.Session, id int64, input VenueInput) (venue.Venue, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
}

type venueCommandsImpl struct {
	venues VenueWriter
}

func NewVenueCommands(venues VenueWriter) VenueCommands {
	return &venueCommandsImpl{venues: venues}
}

func (c *venueCommandsImpl) Create(ctx context.Context, sess *session.Session, input VenueInput) (venue.Venue, error) {
	v, err := toDomain(input)
	if err != nil {
		return venue.Venue{}, err
	}
	return c.venues.Create(ctx, sess, v)
}

func (c *venueCommandsImpl) Update(ctx context.Context, sess *session.Session, id int64, input VenueInput) (venue.Venue, error) {
	v, err := toDomain(input)
	if err != nil {
		return venue.Venue{}, err
	}
	return c.venues.Update(ctx, sess, id, v)
}

func (c *venueCommandsImpl) Delete(ctx context.Context, sess *session.Session, id int64) error {
	return c.venues.Delete(ctx, sess, id)
}

// toDomain validates before submission; the rating and coordinate invariants
// hold for every record this layer sends upstream.
func toDomain(input VenueInput) (venue.Venue, error) {
	v, err := venue.New(input.Name, input.Address, input.Cuisine, input.Rating, input.Latitude, input.Longitude)
	if err != nil {
		return venue.Venue{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return v, nil
}
