package usecase

import "time"

// Read-side views returned by repositories and usecases. Handlers copy these
// into response DTOs; domain entities stay on the write path.

type UserView struct {
	ID          int64
	Email       string
	Name        string
	PhoneNumber string
	Role        string
	Bookings    []BookingView
}

type RoomView struct {
	ID          int64
	RoomType    string
	Price       float64
	Description string
	ImageURL    string
	Bookings    []BookingView
}

type BookingView struct {
	ID               int64
	CheckIn          time.Time
	CheckOut         time.Time
	Adults           int
	Children         int
	TotalGuests      int
	ConfirmationCode string
	RoomID           int64
	UserID           int64
	Room             *RoomView
	User             *UserView
}
