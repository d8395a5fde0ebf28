package response

import (
	"paradise-inn/internal/usecase"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          int64             `json:"id"`
	RoomType    string            `json:"roomType"`
	Price       float64           `json:"roomPrice"`
	Description string            `json:"roomDescription"`
	ImageURL    string            `json:"roomPhotoUrl"`
	Bookings    []BookingResponse `json:"bookings,omitempty"`
}

func FromRoomView(v *usecase.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	if err := copier.CopyWithOption(&resp, v, dateOption); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromRoomViews(views []usecase.RoomView) ([]RoomResponse, error) {
	resps := make([]RoomResponse, 0, len(views))
	for i := range views {
		resp, err := FromRoomView(&views[i])
		if err != nil {
			return nil, err
		}
		resps = append(resps, *resp)
	}
	return resps, nil
}
