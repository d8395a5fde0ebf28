package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"paradise-inn/internal/domain/user"
	"paradise-inn/internal/handler/api"
	"paradise-inn/internal/handler/middleware"
	"paradise-inn/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	User    *api.UserHandler
	Room    *api.RoomHandler
	Booking *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metrics *middleware.Metrics) {
	setupMiddleware(engine, cfg, authMiddleware, metrics)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, authMiddleware *middleware.AuthMiddleware, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(metrics.Middleware())
	logger := middleware.NewLogger(cfg.Log)
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	// Identity attachment runs on every route; enforcement is per group.
	engine.Use(authMiddleware.Authenticate())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: handlers.Auth.Register},
			{Method: http.MethodPost, Path: "/register-admin", Handler: handlers.Auth.RegisterAdmin},
			{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
		})
	}

	users := engine.Group("/users")
	{
		anyAuthenticated := authMiddleware.RequireAuthority(user.RoleUser, user.RoleAdmin)
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/me", Handler: handlers.User.Me, Mw: []gin.HandlerFunc{anyAuthenticated}},
		})

		adminOnly := users.Group("")
		adminOnly.Use(authMiddleware.RequireAuthority(user.RoleAdmin))
		addRoutes(adminOnly, []route{
			{Method: http.MethodGet, Path: "", Handler: handlers.User.List},
			{Method: http.MethodGet, Path: "/:userId", Handler: handlers.User.GetByID},
			{Method: http.MethodGet, Path: "/:userId/bookings", Handler: handlers.User.BookingHistory},
			{Method: http.MethodDelete, Path: "/:userId", Handler: handlers.User.Delete},
		})
	}

	rooms := engine.Group("/rooms")
	{
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: handlers.Room.List},
			{Method: http.MethodGet, Path: "/types", Handler: handlers.Room.Types},
			{Method: http.MethodGet, Path: "/available", Handler: handlers.Room.Available},
			{Method: http.MethodGet, Path: "/available-by-date-type", Handler: handlers.Room.AvailableByDatesAndType},
			{Method: http.MethodGet, Path: "/:roomId", Handler: handlers.Room.GetByID},
		})

		adminOnly := rooms.Group("")
		adminOnly.Use(authMiddleware.RequireAuthority(user.RoleAdmin))
		addRoutes(adminOnly, []route{
			{Method: http.MethodPost, Path: "", Handler: handlers.Room.Add},
			{Method: http.MethodPut, Path: "/:roomId", Handler: handlers.Room.Update},
			{Method: http.MethodDelete, Path: "/:roomId", Handler: handlers.Room.Delete},
		})
	}

	bookings := engine.Group("/bookings")
	{
		anyAuthenticated := authMiddleware.RequireAuthority(user.RoleUser, user.RoleAdmin)
		authed := bookings.Group("")
		authed.Use(anyAuthenticated)
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/room/:roomId/user/:userId", Handler: handlers.Booking.Create},
			{Method: http.MethodGet, Path: "/confirmation/:code", Handler: handlers.Booking.FindByConfirmationCode},
			{Method: http.MethodDelete, Path: "/:bookingId", Handler: handlers.Booking.Cancel},
		})

		adminOnly := bookings.Group("")
		adminOnly.Use(authMiddleware.RequireAuthority(user.RoleAdmin))
		addRoutes(adminOnly, []route{
			{Method: http.MethodGet, Path: "", Handler: handlers.Booking.List},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
