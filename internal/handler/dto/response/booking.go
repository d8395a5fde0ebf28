package response

import (
	"paradise-inn/internal/usecase"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               int64         `json:"id"`
	CheckIn          string        `json:"checkInDate"`
	CheckOut         string        `json:"checkOutDate"`
	Adults           int           `json:"numOfAdults"`
	Children         int           `json:"numOfChildren"`
	TotalGuests      int           `json:"totalNumOfGuest"`
	ConfirmationCode string        `json:"bookingConfirmationCode"`
	Room             *RoomResponse `json:"room,omitempty"`
	User             *UserResponse `json:"user,omitempty"`
}

func FromBookingView(v *usecase.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.CopyWithOption(&resp, v, dateOption); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingViews(views []usecase.BookingView) ([]BookingResponse, error) {
	resps := make([]BookingResponse, 0, len(views))
	for i := range views {
		resp, err := FromBookingView(&views[i])
		if err != nil {
			return nil, err
		}
		resps = append(resps, *resp)
	}
	return resps, nil
}
