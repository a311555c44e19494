//go:build unit

package booking_test

import (
	"testing"

	"rvmarket/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Run("parsing", func(t *testing.T) {
		for _, valid := range []string{"pending", "confirmed", "rejected"} {
			status, err := booking.NewStatus(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, status.String())
		}

		for _, invalid := range []string{"", "cancelled", "PENDING", "approved"} {
			_, err := booking.NewStatus(invalid)
			assert.ErrorIs(t, err, booking.ErrInvalidStatus, "input: %q", invalid)
		}
	})

	t.Run("active statuses occupy dates", func(t *testing.T) {
		assert.True(t, booking.StatusPending.IsActive())
		assert.True(t, booking.StatusConfirmed.IsActive())
		assert.False(t, booking.StatusRejected.IsActive())
	})

	t.Run("transitions", func(t *testing.T) {
		assert.True(t, booking.StatusPending.CanTransitionTo(booking.StatusConfirmed))
		assert.True(t, booking.StatusPending.CanTransitionTo(booking.StatusRejected))
		assert.False(t, booking.StatusPending.CanTransitionTo(booking.StatusPending))

		// Terminal states never move.
		for _, terminal := range []booking.Status{booking.StatusConfirmed, booking.StatusRejected} {
			for _, next := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusRejected} {
				assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
			}
		}
	})
}

func TestBookingTransition(t *testing.T) {
	newPending := func() *booking.Booking {
		dates := booking.NewDateRange(day(5), day(7))
		return booking.NewBooking(uuid.New(), uuid.New(), dates)
	}

	t.Run("new bookings start pending", func(t *testing.T) {
		b := newPending()
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("pending to confirmed", func(t *testing.T) {
		b := newPending()
		require.NoError(t, b.Transition(booking.StatusConfirmed))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("pending to rejected", func(t *testing.T) {
		b := newPending()
		require.NoError(t, b.Transition(booking.StatusRejected))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("decided bookings stay decided", func(t *testing.T) {
		b := newPending()
		require.NoError(t, b.Transition(booking.StatusConfirmed))

		err := b.Transition(booking.StatusRejected)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		b := newPending()
		err := b.Transition(booking.Status("cancelled"))
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
