package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNoAdults         = errors.New("number of adults must be at least one")
	ErrNegativeChildren = errors.New("number of children must not be negative")
)

// Booking ties a stay interval to exactly one room and one user. The
// confirmation code is allocated at construction: a random UUID string,
// unique by randomness width rather than by a storage constraint.
type Booking struct {
	id               int64
	stay             StayInterval
	adults           int
	children         int
	totalGuests      int
	confirmationCode string
	roomID           int64
	userID           int64
}

func NewBooking(stay StayInterval, adults, children int, roomID, userID int64) (*Booking, error) {
	if adults < 1 {
		return nil, ErrNoAdults
	}
	if children < 0 {
		return nil, ErrNegativeChildren
	}

	b := &Booking{
		stay:             stay,
		confirmationCode: uuid.NewString(),
		roomID:           roomID,
		userID:           userID,
	}
	b.SetAdults(adults)
	b.SetChildren(children)
	return b, nil
}

func ReconstructBooking(id int64, stay StayInterval, adults, children int, confirmationCode string, roomID, userID int64) *Booking {
	b := &Booking{
		id:               id,
		stay:             stay,
		confirmationCode: confirmationCode,
		roomID:           roomID,
		userID:           userID,
	}
	b.SetAdults(adults)
	b.SetChildren(children)
	return b
}

// SetAdults recomputes the derived guest total; order relative to
// SetChildren does not matter.
func (b *Booking) SetAdults(n int) {
	b.adults = n
	b.totalGuests = b.adults + b.children
}

func (b *Booking) SetChildren(n int) {
	b.children = n
	b.totalGuests = b.adults + b.children
}

func (b *Booking) ID() int64                { return b.id }
func (b *Booking) Stay() StayInterval       { return b.stay }
func (b *Booking) Adults() int              { return b.adults }
func (b *Booking) Children() int            { return b.children }
func (b *Booking) TotalGuests() int         { return b.totalGuests }
func (b *Booking) ConfirmationCode() string { return b.confirmationCode }
func (b *Booking) RoomID() int64            { return b.roomID }
func (b *Booking) UserID() int64            { return b.userID }
