package usecase

import (
	"context"
	"time"

	"paradise-inn/internal/domain/booking"
	"paradise-inn/internal/infra"
	"paradise-inn/internal/pkg/clock"
	"paradise-inn/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrRoomUnavailable = errs.New("room not available for the selected date range")
	ErrInvalidBooking  = errs.New("invalid booking request")
)

type CreateBookingInput struct {
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
}

// BookingUsecase orchestrates room lookup, user lookup, and the availability
// predicate to produce a persisted booking or a classified failure.
type BookingUsecase interface {
	Create(ctx context.Context, roomID, userID int64, in CreateBookingInput) (*BookingView, error)
	FindByConfirmationCode(ctx context.Context, code string) (*BookingView, error)
	List(ctx context.Context) ([]BookingView, error)
	Cancel(ctx context.Context, id int64) error
}

type bookingUsecaseImpl struct {
	bookings BookingRepository
	rooms    RoomRepository
	users    UserRepository
	clock    clock.Clock
}

func NewBookingUsecase(bookings BookingRepository, rooms RoomRepository, users UserRepository, clk clock.Clock) BookingUsecase {
	return &bookingUsecaseImpl{
		bookings: bookings,
		rooms:    rooms,
		users:    users,
		clock:    clk,
	}
}

func (b *bookingUsecaseImpl) Create(ctx context.Context, roomID, userID int64, in CreateBookingInput) (*BookingView, error) {
	if _, err := b.rooms.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	if _, err := b.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	stay, err := booking.NewStayInterval(in.CheckIn, in.CheckOut, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	entity, err := booking.NewBooking(stay, in.Adults, in.Children, roomID, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	view, err := b.bookings.Create(ctx, entity, func(existing []booking.StayInterval) bool {
		return booking.IsAvailable(entity.Stay(), existing)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrRoomUnavailable
		}
		return nil, errs.Wrap(err, "failed to save booking")
	}

	return view, nil
}

func (b *bookingUsecaseImpl) FindByConfirmationCode(ctx context.Context, code string) (*BookingView, error) {
	view, err := b.bookings.FindByConfirmationCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking by confirmation code")
	}
	return view, nil
}

func (b *bookingUsecaseImpl) List(ctx context.Context) ([]BookingView, error) {
	views, err := b.bookings.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return views, nil
}

func (b *bookingUsecaseImpl) Cancel(ctx context.Context, id int64) error {
	exists, err := b.bookings.Exists(ctx, id)
	if err != nil {
		return errs.Wrap(err, "failed to check booking existence")
	}
	if !exists {
		return ErrBookingNotFound
	}

	if err := b.bookings.Delete(ctx, id); err != nil {
		return errs.Wrap(err, "failed to delete booking")
	}
	return nil
}
