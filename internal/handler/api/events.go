package api

import (
	"log/slog"
	"net/http"
	"slices"

	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type EventHub interface {
	Attach(conn *websocket.Conn)
}

type EventsHandler struct {
	hub      EventHub
	upgrader websocket.Upgrader
}

func NewEventsHandler(hub EventHub, cors config.CORSConfig) *EventsHandler {
	allowed := cors.AllowOrigins
	return &EventsHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
			},
		},
	}
}

// @Summary Booking change feed
// @Description Websocket; each message is {"kind","date","roomId","slot","revision"}
// @Tags events
// @Router /api/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response
		slog.Warn("websocket upgrade failed", "error", err, "client_ip", c.ClientIP())
		c.Abort()
		return
	}
	h.hub.Attach(conn)
}
