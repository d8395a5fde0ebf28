package usecase

import (
	"context"
	"time"

	"paradise-inn/internal/domain/booking"
	"paradise-inn/internal/domain/user"

	"paradise-inn/internal/domain/room"
)

// Storage and collaborator ports. Implementations live under internal/infra
// and report failures as infra.RepositoryError kinds; usecases translate
// those into the sentinel errors handlers switch on.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*UserView, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
	FindByID(ctx context.Context, id int64) (*UserView, error)
	FindAll(ctx context.Context) ([]UserView, error)
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (*RoomView, error)
	Update(ctx context.Context, r *room.Room) (*RoomView, error)
	FindByID(ctx context.Context, id int64) (*RoomView, error)
	FindByIDWithBookings(ctx context.Context, id int64) (*RoomView, error)
	FindAll(ctx context.Context) ([]RoomView, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	FindAvailable(ctx context.Context) ([]RoomView, error)
	FindAvailableByDatesAndType(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]RoomView, error)
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	// Create persists the booking only if admit accepts the room's existing
	// intervals; the read and the insert run inside one transaction so two
	// concurrent requests for the same room serialize.
	Create(ctx context.Context, b *booking.Booking, admit func(existing []booking.StayInterval) bool) (*BookingView, error)
	FindByConfirmationCode(ctx context.Context, code string) (*BookingView, error)
	FindByUserID(ctx context.Context, userID int64) ([]BookingView, error)
	FindAll(ctx context.Context) ([]BookingView, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type ImageHost interface {
	Upload(ctx context.Context, data []byte) (string, error)
}
