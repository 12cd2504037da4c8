//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"gourmet-gateway/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	at := time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		r, err := reservation.New(3, "  Alice Smith ", at)
		require.NoError(t, err)

		assert.Zero(t, r.ID)
		assert.Equal(t, int64(3), r.VenueID)
		assert.Equal(t, "Alice Smith", r.CustomerName)
		assert.True(t, r.Time.Equal(at))
	})

	cases := []struct {
		name     string
		venueID  int64
		customer string
		at       time.Time
		errIs    error
	}{
		{name: "zero venue id", venueID: 0, customer: "Alice", at: at, errIs: reservation.ErrMissingVenue},
		{name: "negative venue id", venueID: -1, customer: "Alice", at: at, errIs: reservation.ErrMissingVenue},
		{name: "blank customer name", venueID: 1, customer: "   ", at: at, errIs: reservation.ErrEmptyCustomerName},
		{name: "zero time", venueID: 1, customer: "Alice", errIs: reservation.ErrZeroReservationTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reservation.New(tc.venueID, tc.customer, tc.at)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
