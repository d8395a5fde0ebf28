package response

import (
	"paradise-inn/internal/usecase"

	"github.com/jinzhu/copier"
)

// UserResponse never carries the password hash; views do not expose it.
type UserResponse struct {
	ID          int64             `json:"id"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	PhoneNumber string            `json:"phoneNumber"`
	Role        string            `json:"role"`
	Bookings    []BookingResponse `json:"bookings,omitempty"`
}

func FromUserView(v *usecase.UserView) (*UserResponse, error) {
	var resp UserResponse
	if err := copier.CopyWithOption(&resp, v, dateOption); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromUserViews(views []usecase.UserView) ([]UserResponse, error) {
	resps := make([]UserResponse, 0, len(views))
	for i := range views {
		resp, err := FromUserView(&views[i])
		if err != nil {
			return nil, err
		}
		resps = append(resps, *resp)
	}
	return resps, nil
}
