package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const alreadyRemovedWarning = "This booking was already removed"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book one room for one time slot on one date
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param roomId path string true "Room ID"
// @Param slot path string true "Slot (HH:MM)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{date}/{roomId}/{slot} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	var key reqdto.BookingKeyURI
	if err := c.ShouldBindUri(&key); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking key", nil)
		return
	}
	view, err := h.q.Booking(c.Request.Context(), key.Date, key.RoomID, key.Slot)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel booking
// @Description Cancelling a booking that no longer exists is not an error
// @Tags bookings
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param roomId path string true "Room ID"
// @Param slot path string true "Slot (HH:MM)"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{date}/{roomId}/{slot} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var key reqdto.BookingKeyURI
	if err := c.ShouldBindUri(&key); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking key", nil)
		return
	}
	err := h.cmds.Cancel(c.Request.Context(), key.ToCancelParams())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resdto.CancelBookingResponse{Removed: true})
	case errs.Is(err, errs.ErrAlreadyRemoved):
		c.JSON(http.StatusOK, resdto.CancelBookingResponse{Removed: false, Warning: alreadyRemovedWarning})
	default:
		abortWithUsecaseError(c, err)
	}
}

// @Summary Remove every booking
// @Tags bookings
// @Produce json
// @Param confirm query bool true "Must be true"
// @Success 200 {object} resdto.ResetResponse
// @Failure 428 {object} httperr.Response
// @Router /api/bookings [delete]
func (h *BookingHandler) Reset(c *gin.Context) {
	var req reqdto.ResetRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid confirm flag", nil)
		return
	}
	if err := h.cmds.Reset(c.Request.Context(), req.Confirm); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ResetResponse{Cleared: true})
}

// @Summary Bookings of a day
// @Description Ordered by slot, then room
// @Tags days
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayBookingsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/days/{date}/bookings [get]
func (h *BookingHandler) DayBookings(c *gin.Context) {
	date := c.Param("date")
	views, err := h.q.DayBookings(c.Request.Context(), date)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromDayBookings(date, views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Day statistics
// @Description Occupied and available slots across all rooms
// @Tags days
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayStatsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/days/{date}/stats [get]
func (h *BookingHandler) DayStats(c *gin.Context) {
	stats, err := h.q.DayStats(c.Request.Context(), c.Param("date"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayStats(stats))
}

// @Summary Slot grid
// @Description Every slot of one room on one date, free or taken
// @Tags days
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param roomId path string true "Room ID"
// @Success 200 {object} resdto.SlotGridResponse
// @Failure 400 {object} httperr.Response
// @Router /api/days/{date}/rooms/{roomId}/slots [get]
func (h *BookingHandler) SlotGrid(c *gin.Context) {
	grid, err := h.q.SlotGrid(c.Request.Context(), c.Param("date"), c.Param("roomId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotGrid(grid))
}
