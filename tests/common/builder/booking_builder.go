//go:build unit

package builder

import (
	"time"

	"paradise-inn/internal/usecase"
)

type BookingBuilder struct {
	ID               int64
	CheckIn          time.Time
	CheckOut         time.Time
	Adults           int
	Children         int
	ConfirmationCode string
	RoomID           int64
	UserID           int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:               1,
		CheckIn:          time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2030, 6, 14, 0, 0, 0, 0, time.UTC),
		Adults:           2,
		Children:         1,
		ConfirmationCode: "7b6e1c2a-4f3d-4b8e-9c1a-2d3e4f5a6b7c",
		RoomID:           1,
		UserID:           1,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildView() *usecase.BookingView {
	return &usecase.BookingView{
		ID:               b.ID,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		Adults:           b.Adults,
		Children:         b.Children,
		TotalGuests:      b.Adults + b.Children,
		ConfirmationCode: b.ConfirmationCode,
		RoomID:           b.RoomID,
		UserID:           b.UserID,
	}
}

func (b *BookingBuilder) BuildRequestMap() map[string]any {
	return map[string]any{
		"checkInDate":   b.CheckIn.Format(time.DateOnly),
		"checkOutDate":  b.CheckOut.Format(time.DateOnly),
		"numOfAdults":   b.Adults,
		"numOfChildren": b.Children,
	}
}
