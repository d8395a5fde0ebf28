//go:build unit

package booking_test

import (
	"testing"
	"time"

	"paradise-inn/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(checkIn, checkOut time.Time) booking.StayInterval {
	return booking.ReconstructStayInterval(checkIn, checkOut)
}

// Existing booking used across cases: June 10 to June 14.
var booked = stay(date(2030, 6, 10), date(2030, 6, 14))

func TestIsAvailable_ConflictCases(t *testing.T) {
	cases := []struct {
		name      string
		candidate booking.StayInterval
	}{
		{
			name:      "same check-in date",
			candidate: stay(date(2030, 6, 10), date(2030, 6, 20)),
		},
		{
			name:      "check-out before existing check-out",
			candidate: stay(date(2030, 6, 5), date(2030, 6, 8)),
		},
		{
			name:      "check-in inside existing stay",
			candidate: stay(date(2030, 6, 12), date(2030, 6, 20)),
		},
		{
			name:      "starts before and ends at existing check-out",
			candidate: stay(date(2030, 6, 8), date(2030, 6, 14)),
		},
		{
			name:      "envelops existing stay",
			candidate: stay(date(2030, 6, 8), date(2030, 6, 20)),
		},
		{
			name:      "reversed zero-length span over existing bounds",
			candidate: stay(date(2030, 6, 14), date(2030, 6, 10)),
		},
		{
			name:      "same-day stay at existing check-out",
			candidate: stay(date(2030, 6, 14), date(2030, 6, 14)),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, booking.IsAvailable(tc.candidate, []booking.StayInterval{booked}))
		})
	}
}

func TestIsAvailable_OpenCases(t *testing.T) {
	t.Run("no existing bookings", func(t *testing.T) {
		candidate := stay(date(2030, 6, 1), date(2030, 6, 5))
		assert.True(t, booking.IsAvailable(candidate, nil))
	})

	t.Run("candidate after existing stay", func(t *testing.T) {
		candidate := stay(date(2030, 6, 15), date(2030, 6, 20))
		assert.True(t, booking.IsAvailable(candidate, []booking.StayInterval{booked}))
	})

	t.Run("candidate after several stays", func(t *testing.T) {
		existing := []booking.StayInterval{
			stay(date(2030, 5, 1), date(2030, 5, 5)),
			booked,
		}
		candidate := stay(date(2030, 7, 1), date(2030, 7, 4))
		assert.True(t, booking.IsAvailable(candidate, existing))
	})
}

// A candidate wholly before the existing stay is still rejected: its
// check-out precedes the existing check-out. Anyone tightening the
// conflict conditions will trip this first.
func TestIsAvailable_RejectsStayWhollyBeforeExisting(t *testing.T) {
	candidate := stay(date(2030, 6, 1), date(2030, 6, 5))
	assert.False(t, booking.IsAvailable(candidate, []booking.StayInterval{booked}))
}
