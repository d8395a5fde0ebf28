package request

import (
	"time"

	"paradise-inn/internal/usecase"
)

type CreateBookingRequest struct {
	CheckInDate   string `json:"checkInDate" binding:"required"`
	CheckOutDate  string `json:"checkOutDate" binding:"required"`
	NumOfAdults   int    `json:"numOfAdults"`
	NumOfChildren int    `json:"numOfChildren"`
}

// ToInput parses the yyyy-mm-dd date strings. Range and guest-count rules
// stay in the domain; only the wire format is checked here.
func (r CreateBookingRequest) ToInput() (usecase.CreateBookingInput, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckInDate)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOutDate)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}

	return usecase.CreateBookingInput{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   r.NumOfAdults,
		Children: r.NumOfChildren,
	}, nil
}
