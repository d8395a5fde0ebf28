package request

type AddRoomRequest struct {
	RoomType        string  `form:"roomType" binding:"required"`
	RoomPrice       float64 `form:"roomPrice" binding:"required"`
	RoomDescription string  `form:"roomDescription" binding:"required"`
}

// UpdateRoomRequest fields are optional; absent ones keep the stored value.
type UpdateRoomRequest struct {
	RoomType        *string  `form:"roomType"`
	RoomPrice       *float64 `form:"roomPrice"`
	RoomDescription *string  `form:"roomDescription"`
}
