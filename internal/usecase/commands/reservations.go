package commands

import (
	"context"
	"time"

	"gourmet-gateway/internal/domain/reservation"
	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/pkg/errs"
)

// ReservationWriter is the mutation slice of the reservation resource gateway.
type ReservationWriter interface {
	Create(ctx context.Context, sess *session.Session, r reservation.Reservation) (reservation.Reservation, error)
	Cancel(ctx context.Context, sess *session.Session, id int64) error
}

type ReservationInput struct {
	VenueID int64
	// CustomerName defaults to the session username when left empty.
	CustomerName string
	Time         time.Time
}

type ReservationCommands interface {
	Create(ctx context.Context, sess *session.Session, input ReservationInput) (reservation.Reservation, error)
	Cancel(ctx context.Context, sess *session.Session, id int64) error
}

type reservationCommandsImpl struct {
	reservations ReservationWriter
}

func NewReservationCommands(reservations ReservationWriter) ReservationCommands {
	return &reservationCommandsImpl{reservations: reservations}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, sess *session.Session, input ReservationInput) (reservation.Reservation, error) {
	customer := input.CustomerName
	if customer == "" && sess != nil {
		customer = sess.Username
	}

	r, err := reservation.New(input.VenueID, customer, input.Time)
	if err != nil {
		return reservation.Reservation{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return c.reservations.Create(ctx, sess, r)
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, sess *session.Session, id int64) error {
	return c.reservations.Cancel(ctx, sess, id)
}
