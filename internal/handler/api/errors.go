package api

import (
	"net/http"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase errors onto statuses and user-facing messages.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
	case errs.Is(err, errs.ErrInvalidSelection):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid selection, please try again", nil)
	case errs.Is(err, errs.ErrReservedByRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Tell us who is booking", nil)
	case errs.Is(err, errs.ErrSlotTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "This slot was just booked, refresh and pick another", nil)
	case errs.Is(err, errs.ErrStaleData):
		httperr.AbortWithError(c, http.StatusConflict, err, "Bookings changed in the meantime, please retry", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrNothingToExport):
		httperr.AbortWithError(c, http.StatusNotFound, err, "There are no bookings to export yet", nil)
	case errs.Is(err, errs.ErrConfirmationRequired):
		httperr.AbortWithError(c, http.StatusPreconditionRequired, err, "Confirm with confirm=true to remove every booking", nil)
	case errs.Is(err, errs.ErrStorageUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage is unavailable, try again later", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
