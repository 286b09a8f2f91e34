package api

import (
	"net/http"
	"strconv"

	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const csvContentType = "text/csv; charset=utf-8"

type ExportHandler struct {
	q queries.BookingQueries
}

func NewExportHandler(q queries.BookingQueries) *ExportHandler {
	return &ExportHandler{q: q}
}

// @Summary Export bookings as CSV
// @Description Semicolon-delimited, UTF-8 with BOM, one row per booking
// @Tags export
// @Produce text/csv
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /api/export.csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	file, err := h.q.ExportCSV(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(file.Filename))
	c.Data(http.StatusOK, csvContentType, file.Content)
}
