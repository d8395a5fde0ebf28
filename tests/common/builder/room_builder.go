//go:build unit

package builder

import (
	"paradise-inn/internal/domain/room"
	"paradise-inn/internal/usecase"
)

type RoomBuilder struct {
	ID          int64
	RoomType    string
	Price       float64
	Description string
	ImageURL    string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          1,
		RoomType:    "Deluxe Suite",
		Price:       199.99,
		Description: "Sea view, king bed",
		ImageURL:    "https://images.example.com/rooms/1.jpg",
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.RoomType, r.Price, r.Description, r.ImageURL)
}

func (r *RoomBuilder) BuildView() *usecase.RoomView {
	return &usecase.RoomView{
		ID:          r.ID,
		RoomType:    r.RoomType,
		Price:       r.Price,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}
