package usecase

import (
	"context"
	"time"

	"paradise-inn/internal/domain/room"
	"paradise-inn/internal/infra"
	"paradise-inn/internal/pkg/errs"
)

var ErrRoomNotFound = errs.New("room not found")

type AddRoomInput struct {
	Photo       []byte
	RoomType    string
	Price       float64
	Description string
}

// UpdateRoomInput carries only the fields to change; nil means keep.
type UpdateRoomInput struct {
	Photo       []byte
	RoomType    *string
	Price       *float64
	Description *string
}

type RoomUsecase interface {
	Add(ctx context.Context, in AddRoomInput) (*RoomView, error)
	Update(ctx context.Context, id int64, in UpdateRoomInput) (*RoomView, error)
	List(ctx context.Context) ([]RoomView, error)
	Types(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*RoomView, error)
	Available(ctx context.Context) ([]RoomView, error)
	AvailableByDatesAndType(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]RoomView, error)
	Delete(ctx context.Context, id int64) error
}

type roomUsecaseImpl struct {
	rooms  RoomRepository
	images ImageHost
}

func NewRoomUsecase(rooms RoomRepository, images ImageHost) RoomUsecase {
	return &roomUsecaseImpl{
		rooms:  rooms,
		images: images,
	}
}

func (r *roomUsecaseImpl) Add(ctx context.Context, in AddRoomInput) (*RoomView, error) {
	imageURL, err := r.images.Upload(ctx, in.Photo)
	if err != nil {
		return nil, errs.Wrap(err, "failed to upload room image")
	}

	entity, err := room.NewRoom(in.RoomType, in.Price, in.Description, imageURL)
	if err != nil {
		return nil, err
	}

	view, err := r.rooms.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to save room")
	}
	return view, nil
}

func (r *roomUsecaseImpl) Update(ctx context.Context, id int64, in UpdateRoomInput) (*RoomView, error) {
	current, err := r.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	imageURL := current.ImageURL
	if len(in.Photo) > 0 {
		imageURL, err = r.images.Upload(ctx, in.Photo)
		if err != nil {
			return nil, errs.Wrap(err, "failed to upload room image")
		}
	}

	roomType := current.RoomType
	if in.RoomType != nil {
		roomType = *in.RoomType
	}
	price := current.Price
	if in.Price != nil {
		price = *in.Price
	}
	description := current.Description
	if in.Description != nil {
		description = *in.Description
	}

	entity := room.ReconstructRoom(id, roomType, price, description, imageURL)
	view, err := r.rooms.Update(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to update room")
	}
	return view, nil
}

func (r *roomUsecaseImpl) List(ctx context.Context) ([]RoomView, error) {
	views, err := r.rooms.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return views, nil
}

func (r *roomUsecaseImpl) Types(ctx context.Context) ([]string, error) {
	types, err := r.rooms.DistinctTypes(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list room types")
	}
	return types, nil
}

func (r *roomUsecaseImpl) GetByID(ctx context.Context, id int64) (*RoomView, error) {
	view, err := r.rooms.FindByIDWithBookings(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}
	return view, nil
}

func (r *roomUsecaseImpl) Available(ctx context.Context) ([]RoomView, error) {
	views, err := r.rooms.FindAvailable(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list available rooms")
	}
	return views, nil
}

func (r *roomUsecaseImpl) AvailableByDatesAndType(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]RoomView, error) {
	views, err := r.rooms.FindAvailableByDatesAndType(ctx, checkIn, checkOut, roomType)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list available rooms by dates and type")
	}
	return views, nil
}

func (r *roomUsecaseImpl) Delete(ctx context.Context, id int64) error {
	if _, err := r.rooms.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Wrap(err, "failed to find room")
	}

	if err := r.rooms.Delete(ctx, id); err != nil {
		return errs.Wrap(err, "failed to delete room")
	}
	return nil
}
