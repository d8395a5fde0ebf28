package room

import (
	"errors"
	"strings"
)

var (
	ErrTypeRequired        = errors.New("room type is required")
	ErrNegativePrice       = errors.New("room price cannot be negative")
	ErrDescriptionRequired = errors.New("room description is required")
)

// Room is a bookable unit of inventory. Bookings reference rooms by id; the
// room itself does not own its booking set.
type Room struct {
	id          int64
	roomType    string
	price       float64
	description string
	imageURL    string
}

func NewRoom(roomType string, price float64, description, imageURL string) (*Room, error) {
	if strings.TrimSpace(roomType) == "" {
		return nil, ErrTypeRequired
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	return &Room{
		roomType:    roomType,
		price:       price,
		description: description,
		imageURL:    imageURL,
	}, nil
}

func ReconstructRoom(id int64, roomType string, price float64, description, imageURL string) *Room {
	return &Room{
		id:          id,
		roomType:    roomType,
		price:       price,
		description: description,
		imageURL:    imageURL,
	}
}

func (r *Room) ID() int64           { return r.id }
func (r *Room) RoomType() string    { return r.roomType }
func (r *Room) Price() float64      { return r.price }
func (r *Room) Description() string { return r.description }
func (r *Room) ImageURL() string    { return r.imageURL }
