package api

import (
	"net/http"

	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q queries.BookingQueries
}

func NewRoomHandler(q queries.BookingQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary List rooms
// @Description Case-insensitive search over name, type, floor and capacity
// @Tags rooms
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} resdto.RoomListResponse
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	resp, err := resdto.FromRooms(h.q.Rooms(c.Request.Context(), c.Query("q")))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List time slots
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.SlotListResponse
// @Router /api/slots [get]
func (h *RoomHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.SlotListResponse{Slots: h.q.Slots(c.Request.Context())})
}
