package booking

import (
	"errors"
	"time"
)

var (
	ErrCheckInRequired   = errors.New("check-in date is required")
	ErrCheckOutNotAfter  = errors.New("check-out date must be after check-in date")
	ErrCheckOutNotFuture = errors.New("check-out date must be in the future")
)

// StayInterval is the date range [checkIn, checkOut) a booking occupies.
// Both bounds are calendar dates; time-of-day is discarded.
type StayInterval struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayInterval validates the range against now: check-in must be present,
// check-out strictly after check-in and strictly in the future.
func NewStayInterval(checkIn, checkOut time.Time, now time.Time) (StayInterval, error) {
	if checkIn.IsZero() {
		return StayInterval{}, ErrCheckInRequired
	}

	in := toDate(checkIn)
	out := toDate(checkOut)

	if !out.After(in) {
		return StayInterval{}, ErrCheckOutNotAfter
	}
	if !out.After(toDate(now)) {
		return StayInterval{}, ErrCheckOutNotFuture
	}

	return StayInterval{checkIn: in, checkOut: out}, nil
}

// ReconstructStayInterval rebuilds an interval from storage without
// revalidating it against the current time.
func ReconstructStayInterval(checkIn, checkOut time.Time) StayInterval {
	return StayInterval{checkIn: toDate(checkIn), checkOut: toDate(checkOut)}
}

func (s StayInterval) CheckIn() time.Time {
	return s.checkIn
}

func (s StayInterval) CheckOut() time.Time {
	return s.checkOut
}

func (s StayInterval) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
