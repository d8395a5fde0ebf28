package api

import (
	"errors"
	"net/http"

	"paradise-inn/internal/domain/booking"
	reqdto "paradise-inn/internal/handler/dto/request"
	resdto "paradise-inn/internal/handler/dto/response"
	"paradise-inn/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// @Summary Book a room
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomId path int true "Room id"
// @Param userId path int true "User id"
// @Param request body reqdto.CreateBookingRequest true "Stay details"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /bookings/room/{roomId}/user/{userId} [post]
func (h *BookingHandler) Create(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Invalid request format"))
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Dates must be in yyyy-mm-dd format"))
		return
	}

	view, err := h.bookingUsecase.Create(c.Request.Context(), roomID, userID, in)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	bookingResp, err := resdto.FromBookingView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.Booking = bookingResp
	resp.BookingConfirmationCode = view.ConfirmationCode
	c.JSON(http.StatusOK, resp)
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	views, err := h.bookingUsecase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	list, err := resdto.FromBookingViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.BookingList = list
	c.JSON(http.StatusOK, resp)
}

// @Summary Find booking by confirmation code
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param code path string true "Confirmation code"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /bookings/confirmation/{code} [get]
func (h *BookingHandler) FindByConfirmationCode(c *gin.Context) {
	view, err := h.bookingUsecase.FindByConfirmationCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	bookingResp, err := resdto.FromBookingView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.Booking = bookingResp
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingId path int true "Booking id"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /bookings/{bookingId} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	if err := h.bookingUsecase.Cancel(c.Request.Context(), id); err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewEnvelope(http.StatusOK, "Successful"))
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, resdto.NewEnvelope(http.StatusNotFound, "Room not found"))
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, resdto.NewEnvelope(http.StatusNotFound, "User not found"))
	case errors.Is(err, usecase.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, resdto.NewEnvelope(http.StatusNotFound, "Booking not found"))
	case errors.Is(err, usecase.ErrRoomUnavailable):
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Room not Available for the selected date range"))
	case errors.Is(err, booking.ErrCheckInRequired),
		errors.Is(err, booking.ErrCheckOutNotAfter),
		errors.Is(err, booking.ErrCheckOutNotFuture),
		errors.Is(err, booking.ErrNoAdults),
		errors.Is(err, booking.ErrNegativeChildren):
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, err.Error()))
	case errors.Is(err, usecase.ErrInvalidBooking):
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Invalid booking request"))
	default:
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
	}
}
