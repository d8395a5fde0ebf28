//go:build unit

package room_test

import (
	"testing"

	"paradise-inn/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("valid room", func(t *testing.T) {
		r, err := room.NewRoom("Deluxe Suite", 199.99, "Sea view, king bed", "https://images.example.com/rooms/1.jpg")
		require.NoError(t, err)

		assert.Equal(t, "Deluxe Suite", r.RoomType())
		assert.InDelta(t, 199.99, r.Price(), 0.001)
		assert.Equal(t, int64(0), r.ID())
	})

	t.Run("free rooms are allowed", func(t *testing.T) {
		_, err := room.NewRoom("Standard", 0, "Basic room", "")
		assert.NoError(t, err)
	})

	cases := []struct {
		name        string
		roomType    string
		price       float64
		description string
		errIs       error
	}{
		{
			name:        "blank type",
			roomType:    "   ",
			price:       100,
			description: "desc",
			errIs:       room.ErrTypeRequired,
		},
		{
			name:        "negative price",
			roomType:    "Standard",
			price:       -0.01,
			description: "desc",
			errIs:       room.ErrNegativePrice,
		},
		{
			name:        "blank description",
			roomType:    "Standard",
			price:       100,
			description: "",
			errIs:       room.ErrDescriptionRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := room.NewRoom(tc.roomType, tc.price, tc.description, "")
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestReconstructRoom(t *testing.T) {
	r := room.ReconstructRoom(7, "Penthouse", 899, "Top floor", "https://images.example.com/rooms/7.jpg")

	assert.Equal(t, int64(7), r.ID())
	assert.Equal(t, "Penthouse", r.RoomType())
	assert.Equal(t, "https://images.example.com/rooms/7.jpg", r.ImageURL())
}
