// Package response defines the uniform envelope every endpoint returns and
// the payload DTOs it carries.
package response

import (
	"time"

	"paradise-inn/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Envelope is the single response shape of the API. StatusCode mirrors the
// HTTP status so clients reading only the body stay consistent with the
// transport.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`

	Token          string `json:"token,omitempty"`
	Role           string `json:"role,omitempty"`
	ExpirationTime string `json:"expirationTime,omitempty"`

	User        *UserResponse     `json:"user,omitempty"`
	UserList    []UserResponse    `json:"userList,omitempty"`
	Room        *RoomResponse     `json:"room,omitempty"`
	RoomList    []RoomResponse    `json:"roomList,omitempty"`
	RoomTypes   []string          `json:"roomTypes,omitempty"`
	Booking     *BookingResponse  `json:"booking,omitempty"`
	BookingList []BookingResponse `json:"bookingList,omitempty"`

	BookingConfirmationCode string `json:"bookingConfirmationCode,omitempty"`
}

func NewEnvelope(statusCode int, message string) *Envelope {
	return &Envelope{StatusCode: statusCode, Message: message}
}

// dateOption renders calendar dates as yyyy-mm-dd strings when views are
// copied into DTOs.
var dateOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errs.New("date converter received a non-time value")
				}
				if t.IsZero() {
					return "", nil
				}
				return t.Format(time.DateOnly), nil
			},
		},
	},
}
