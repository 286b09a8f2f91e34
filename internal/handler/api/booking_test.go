//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"room-booking/internal/domain/catalog"
	"room-booking/internal/handler/api"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	"room-booking/tests/common/testutil"
	commandsmock "room-booking/tests/mock/commands"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	bookings := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	rooms := api.NewRoomHandler(s.mockQueries)
	export := api.NewExportHandler(s.mockQueries)

	s.router.POST("/api/bookings", bookings.Create)
	s.router.DELETE("/api/bookings", bookings.Reset)
	s.router.GET("/api/bookings/:date/:roomId/:slot", bookings.Get)
	s.router.DELETE("/api/bookings/:date/:roomId/:slot", bookings.Cancel)
	s.router.GET("/api/days/:date/stats", bookings.DayStats)
	s.router.GET("/api/days/:date/bookings", bookings.DayBookings)
	s.router.GET("/api/days/:date/rooms/:roomId/slots", bookings.SlotGrid)
	s.router.GET("/api/rooms", rooms.List)
	s.router.GET("/api/slots", rooms.Slots)
	s.router.GET("/api/export.csv", export.CSV)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequest()

	s.Run("success: returns 201 Created with the stored booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildParams()).
			Return(b.BuildResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("2024-05-01", body.Date)
		s.Equal("R1", body.RoomID)
		s.Equal("09:00", body.Slot)
		s.Equal("Ana", body.By)
		s.Equal(int64(1), body.Revision)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: roomId", mutate: testutil.Field("roomId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: slot", mutate: testutil.Field("slot", nil), expectCode: http.StatusBadRequest},
			{name: "empty slot", mutate: testutil.Field("slot", ""), expectCode: http.StatusBadRequest},
			{name: "reserved-by too long", mutate: testutil.Field("by", strings.Repeat("a", 121)), expectCode: http.StatusBadRequest},
			{name: "reason too long", mutate: testutil.Field("reason", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
			{name: "reason length OK (500 chars)", mutate: testutil.Field("reason", strings.Repeat("a", 500)), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
						Return(b.BuildResult(), nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{"date":`))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid date", errs.Wrapf(errs.ErrInvalidDate, "date %q", "2024-02-30"), http.StatusBadRequest, "Invalid date"},
			{"unknown room", errs.Wrapf(errs.ErrInvalidSelection, "unknown room %q", "R9"), http.StatusBadRequest, "Invalid selection"},
			{"blank reserved-by", errs.ErrReservedByRequired, http.StatusBadRequest, "who is booking"},
			{"slot taken", errs.ErrSlotTaken, http.StatusConflict, "just booked"},
			{"stale data", errs.Mark(errors.New("revision mismatch"), errs.ErrStaleData), http.StatusConflict, "please retry"},
			{"storage unavailable", errs.Mark(errors.New("dial tcp"), errs.ErrStorageUnavailable), http.StatusServiceUnavailable, "Storage is unavailable"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildParams()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	url := "/api/bookings/2024-05-01/LAB/14:00"
	params := commands.CancelBookingParams{Date: "2024-05-01", RoomID: "LAB", Slot: "14:00"}

	s.Run("success: removed", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), params).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Removed)
		s.Empty(body.Warning)
	})

	s.Run("success: already removed is a warning, not an error", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), params).Return(errs.ErrAlreadyRemoved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Removed)
		s.Contains(body.Warning, "already removed")
	})

	s.Run("error: stale data is a retryable conflict", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), params).
			Return(errs.Mark(errors.New("revision mismatch"), errs.ErrStaleData)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "please retry")
	})
}

// ================================================================================
// TestReset
// ================================================================================

func (s *BookingHandlerTestSuite) TestReset() {
	s.Run("success: confirmed wipe", func() {
		s.mockCommands.EXPECT().Reset(gomock.Any(), true).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings?confirm=true", nil)

		var body resdto.ResetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Cleared)
	})

	s.Run("error: 428 without confirmation", func() {
		s.mockCommands.EXPECT().Reset(gomock.Any(), false).Return(errs.ErrConfirmationRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPreconditionRequired, "confirm=true")
	})

	s.Run("error: 400 on an unparseable flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings?confirm=maybe", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid confirm flag")
	})
}

// ================================================================================
// Read side
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().Booking(gomock.Any(), "2024-05-01", "R1", "09:00").
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/2024-05-01/R1/09:00", nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Sala de Reunião 1", body.RoomName)
		s.Equal("01/05/2024 09:00", body.CreatedAtDisplay)
	})

	s.Run("error: 404 when absent", func() {
		s.mockQueries.EXPECT().Booking(gomock.Any(), "2024-05-01", "R1", "10:00").
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/2024-05-01/R1/10:00", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestDayViews() {
	s.Run("stats", func() {
		s.mockQueries.EXPECT().DayStats(gomock.Any(), "2024-05-01").
			Return(&queries.DayStatsView{Date: "2024-05-01", Occupied: 3, Available: 51, Capacity: 54}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/days/2024-05-01/stats", nil)

		var body resdto.DayStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.DayStatsResponse{Date: "2024-05-01", Occupied: 3, Available: 51, Capacity: 54}, body)
	})

	s.Run("stats: invalid date", func() {
		s.mockQueries.EXPECT().DayStats(gomock.Any(), "01-05-2024").
			Return(nil, errs.Wrapf(errs.ErrInvalidDate, "date %q", "01-05-2024")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/days/01-05-2024/stats", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("bookings", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().DayBookings(gomock.Any(), "2024-05-01").
			Return([]queries.BookingView{*view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/days/2024-05-01/bookings", nil)

		var body resdto.DayBookingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2024-05-01", body.Date)
		s.Require().Len(body.Bookings, 1)
		s.Equal("Ana", body.Bookings[0].By)
	})

	s.Run("bookings: empty day is an empty list", func() {
		s.mockQueries.EXPECT().DayBookings(gomock.Any(), "2024-06-01").
			Return([]queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/days/2024-06-01/bookings", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"date":"2024-06-01","bookings":[]}`, rec.Body.String())
	})

	s.Run("slot grid", func() {
		s.mockQueries.EXPECT().SlotGrid(gomock.Any(), "2024-05-01", "R1").
			Return(&queries.SlotGridView{
				Date: "2024-05-01", RoomID: "R1", RoomName: "Sala de Reunião 1",
				Slots: []queries.SlotView{{Slot: "08:00", Available: true}, {Slot: "09:00", By: "Ana"}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/days/2024-05-01/rooms/R1/slots", nil)

		var body resdto.SlotGridResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Slots, 2)
		s.True(body.Slots[0].Available)
		s.Equal("Ana", body.Slots[1].By)
	})
}

func (s *BookingHandlerTestSuite) TestRooms() {
	s.Run("search is passed through", func() {
		s.mockQueries.EXPECT().Rooms(gomock.Any(), "aula").
			Return([]catalog.Room{{ID: "LAB", Name: "Laboratório", Capacity: 20, Type: "Aula", Floor: "Térreo"}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms?q=aula", nil)

		var body resdto.RoomListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
		s.Equal(resdto.RoomResponse{ID: "LAB", Name: "Laboratório", Capacity: 20, Type: "Aula", Floor: "Térreo"}, body.Rooms[0])
	})

	s.Run("slots", func() {
		s.mockQueries.EXPECT().Slots(gomock.Any()).Return([]string{"08:00", "09:00"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots", nil)

		var body resdto.SlotListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"08:00", "09:00"}, body.Slots)
	})
}

func (s *BookingHandlerTestSuite) TestExport() {
	s.Run("success: attachment with csv content", func() {
		content := []byte("\uFEFFData (ISO);Hora\n")
		s.mockQueries.EXPECT().ExportCSV(gomock.Any()).
			Return(&queries.ExportFile{Filename: "reservas-salas_2024-05-03.csv", Content: content}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/export.csv", nil)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "text/csv; charset=utf-8",
			"Content-Disposition": `attachment; filename="reservas-salas_2024-05-03.csv"`,
		})
		s.Equal(content, rec.Body.Bytes())
	})

	s.Run("error: 404 when there is nothing to export", func() {
		s.mockQueries.EXPECT().ExportCSV(gomock.Any()).Return(nil, errs.ErrNothingToExport).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/export.csv", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no bookings to export")
	})
}
