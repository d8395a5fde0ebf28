package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "paradise-inn/internal/handler/dto/response"
	"paradise-inn/internal/handler/middleware"
	"paradise-inn/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.userUsecase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	list, err := resdto.FromUserViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.UserList = list
	c.JSON(http.StatusOK, resp)
}

// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User id"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /users/{userId} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	view, err := h.userUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	h.respondUser(c, view)
}

// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	email, ok := middleware.CurrentPrincipalEmail(c)
	if !ok {
		// RequireAuthority runs first on this route.
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	view, err := h.userUsecase.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	h.respondUser(c, view)
}

// @Summary User booking history
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User id"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /users/{userId}/bookings [get]
func (h *UserHandler) BookingHistory(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	view, err := h.userUsecase.BookingHistory(c.Request.Context(), id)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	h.respondUser(c, view)
}

// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User id"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /users/{userId} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), id); err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewEnvelope(http.StatusOK, "Successful"))
}

func (h *UserHandler) respondUser(c *gin.Context, view *usecase.UserView) {
	userResp, err := resdto.FromUserView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
		return
	}

	resp := resdto.NewEnvelope(http.StatusOK, "Successful")
	resp.User = userResp
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) respondUserError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, resdto.NewEnvelope(http.StatusNotFound, "User not found"))
		return
	}
	c.JSON(http.StatusInternalServerError, resdto.NewEnvelope(http.StatusInternalServerError, "Internal server error"))
}

// pathID parses a numeric path parameter, answering 400 itself when the
// value is not a number.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.NewEnvelope(http.StatusBadRequest, "Invalid "+name))
		return 0, false
	}
	return id, true
}
