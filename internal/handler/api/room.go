package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"paradise-inn/internal/domain/room"
	reqdto "paradise-inn/internal/handler/dto/request"
	resdto "paradise-inn/internal/handler/dto/response"
	"paradise-inn/internal/infra/imghost"
	"paradise-inn/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase}
}

// @Summary Add room
// @Tags rooms
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Room photo"
// @Param roomType formData string true "Room type"
// @Param roomPrice formData number true "Nightly price"
// @Param roomDescription formData string true "Description"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Router /rooms [post]
func (h *RoomHandler) Add(c *gin.Context) {
	var req reqdto.AddRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest,
			"Please provide values for all fields (photo, roomType, roomPrice, roomDescription)"))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest,
			"Please provide values for all fields (photo, roomType, roomPrice, roomDescription)"))
		return
	}

	photo, ok := readPhoto(c, fileHeader)
	if !ok {
		return
	}

	view, err := h.roomUsecase.Add(c.Request.Context(), usecase.AddRoomInput{
		Photo:       photo,
		RoomType:    req.RoomType,
		Price:       req.RoomPrice,
		Description: req.RoomDescription,
	})
	if err != nil {
		h.respondRoomError(c, err)
		return
	}

	h.respondRoom(c, view)
}

// @Summary Update room
// @Tags rooms
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param roomId path int true "Room id"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /rooms/{roomId} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "roomId")
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Invalid request format"))
		return
	}

	in := usecase.UpdateRoomInput{
		RoomType:    req.RoomType,
		Price:       req.RoomPrice,
		Description: req.RoomDescription,
	}

	if fileHeader, err := c.FormFile("photo"); err == nil {
		photo, ok := readPhoto(c, fileHeader)
		if !ok {
			return
		}
		in.Photo = photo
	}

	view, err := h.roomUsecase.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondRoomError(c, err)
		return
	}

	h.respondRoom(c, view)
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.roomUsecase.List(c.Request.Context())
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	h.respondRoomList(c, views)
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /rooms/types [get]
func (h *RoomHandler) Types(c *gin.Context) {
	types, err := h.roomUsecase.Types(c.Request.Context())
	if err != nil {
		h.respondRoomError(c, err)
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.RoomTypes = types
	c.JSON(http.StatusOK, resp)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param roomId path int true "Room id"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /rooms/{roomId} [get]
func (h *RoomHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "roomId")
	if !ok {
		return
	}

	view, err := h.roomUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondRoomError(c, err)
		return
	}

	h.respondRoom(c, view)
}

// @Summary List rooms without bookings
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /rooms/available [get]
func (h *RoomHandler) Available(c *gin.Context) {
	views, err := h.roomUsecase.Available(c.Request.Context())
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	h.respondRoomList(c, views)
}

// @Summary List rooms available for dates and type
// @Tags rooms
// @Produce json
// @Param checkInDate query string true "Check-in date (yyyy-mm-dd)"
// @Param checkOutDate query string true "Check-out date (yyyy-mm-dd)"
// @Param roomType query string true "Room type filter"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Router /rooms/available-by-date-type [get]
func (h *RoomHandler) AvailableByDatesAndType(c *gin.Context) {
	checkInRaw := c.Query("checkInDate")
	checkOutRaw := c.Query("checkOutDate")
	roomType := c.Query("roomType")

	if checkInRaw == "" || checkOutRaw == "" || roomType == "" {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest,
			"Please provide values for all fields (checkInDate, checkOutDate, roomType)"))
		return
	}

	checkIn, err := time.Parse(time.DateOnly, checkInRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Invalid checkInDate"))
		return
	}
	checkOut, err := time.Parse(time.DateOnly, checkOutRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Invalid checkOutDate"))
		return
	}

	views, err := h.roomUsecase.AvailableByDatesAndType(c.Request.Context(), checkIn, checkOut, roomType)
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	h.respondRoomList(c, views)
}

// @Summary Delete room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomId path int true "Room id"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /rooms/{roomId} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "roomId")
	if !ok {
		return
	}

	if err := h.roomUsecase.Delete(c.Request.Context(), id); err != nil {
		h.respondRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewEnvelope(http.StatusOK, "Successful"))
}

func (h *RoomHandler) respondRoom(c *gin.Context, view *usecase.RoomView) {
	roomResp, err := resdto.FromRoomView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.Room = roomResp
	c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) respondRoomList(c *gin.Context, views []usecase.RoomView) {
	list, err := resdto.FromRoomViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.RoomList = list
	c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) respondRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, resdto.NewEnvelope(http.StatusNotFound, "Room not found"))
	case errors.Is(err, imghost.ErrImageTooLarge),
		errors.Is(err, imghost.ErrEmptyImage):
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, err.Error()))
	case errors.Is(err, room.ErrTypeRequired),
		errors.Is(err, room.ErrNegativePrice),
		errors.Is(err, room.ErrDescriptionRequired):
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
	}
}

func readPhoto(c *gin.Context, fileHeader *multipart.FileHeader) ([]byte, bool) {
	if fileHeader.Size > imghost.MaxImageBytes {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, imghost.ErrImageTooLarge.Error()))
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return nil, false
	}
	defer file.Close()

	photo, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return nil, false
	}

	return photo, true
}
