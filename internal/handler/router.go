package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Room    *api.RoomHandler
	Export  *api.ExportHandler
	Events  *api.EventsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, limiter *middleware.RateLimiter, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, limiter, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, limiter *middleware.RateLimiter, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{limiter.Middleware()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/slots", Handler: h.Room.Slots},
			{Method: http.MethodGet, Path: "/export.csv", Handler: h.Export.CSV},
			{Method: http.MethodGet, Path: "/events", Handler: h.Events.Stream},
		})

		days := apiGroup.Group("/days/:date")
		{
			addRoutes(days, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Booking.DayStats},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.DayBookings},
				{Method: http.MethodGet, Path: "/rooms/:roomId/slots", Handler: h.Booking.SlotGrid},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: limited},
				{Method: http.MethodDelete, Path: "", Handler: h.Booking.Reset, Mw: limited},
				{Method: http.MethodGet, Path: "/:date/:roomId/:slot", Handler: h.Booking.Get},
				{Method: http.MethodDelete, Path: "/:date/:roomId/:slot", Handler: h.Booking.Cancel, Mw: limited},
			})
		}
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
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		case http.MethodDelete:
			g.DELETE(r.Path, hs...)
		default:
			g.Any(r.Path, hs...)
		}
	}
}
