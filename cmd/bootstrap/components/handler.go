package components

import (
	"paradise-inn/internal/handler"
	"paradise-inn/internal/handler/api"
	"paradise-inn/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
		middleware.NewMetrics,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, user *api.UserHandler, room *api.RoomHandler, booking *api.BookingHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		User:    user,
		Room:    room,
		Booking: booking,
	}
}
