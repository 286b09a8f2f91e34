//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/infra"
	"room-booking/internal/infra/kv"
	"room-booking/internal/pkg/config"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	"room-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	bookingURL  = "/api/bookings/2024-05-01/R1/09:00"
	statsURL    = "/api/days/2024-05-01/stats"
	dayURL      = "/api/days/2024-05-01/bookings"
	gridURL     = "/api/days/2024-05-01/rooms/R1/slots"
	exportURL   = "/api/export.csv"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	for _, backend := range []string{config.BackendPostgres, config.BackendRedis, config.BackendMongo} {
		t.Run(backend, func(t *testing.T) {
			suite.Run(t, &BookingSuite{SharedSuite: e2e.SharedSuite{Backend: backend}})
		})
	}
}

func (s *BookingSuite) create(req reqdto.CreateBookingRequest) int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req)
	return w.Code
}

func (s *BookingSuite) stats() resdto.DayStatsResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statsURL, nil)
	var body resdto.DayStatsResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	return body
}

// =============================================================================
// TestBookingLifecycle - create, read, cancel through the HTTP surface
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("create then read back", func() {
		t := s.T()
		req := builder.NewBookingBuilder().BuildRequest()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req)
		var created resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Positive(t, created.Revision)
		require.Positive(t, created.CreatedAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil)
		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := resdto.BookingResponse{
			Date:     "2024-05-01",
			Slot:     "09:00",
			RoomID:   "R1",
			RoomName: "Sala de Reunião 1",
			By:       "Ana",
			Reason:   "weekly sync",
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(resdto.BookingResponse{}, "CreatedAt", "CreatedAtDisplay")); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, resdto.DayStatsResponse{Date: "2024-05-01", Occupied: 1, Available: 53, Capacity: 54}, s.stats())
	})

	s.Run("second booking of the same slot is a conflict", func() {
		req := builder.NewBookingBuilder().BuildRequest()
		require.Equal(s.T(), http.StatusCreated, s.create(req))

		other := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.By = "Bia" }).BuildRequest()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, other)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "just booked")
	})

	s.Run("different rooms at the same slot do not collide", func() {
		for _, room := range []string{"R1", "R2", "LAB"} {
			req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = room }).BuildRequest()
			require.Equal(s.T(), http.StatusCreated, s.create(req), room)
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, dayURL, nil)
		var day resdto.DayBookingsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &day)
		require.Len(s.T(), day.Bookings, 3)
		require.Equal(s.T(), 3, s.stats().Occupied)
	})

	s.Run("slot grid reflects the booking", func() {
		require.Equal(s.T(), http.StatusCreated, s.create(builder.NewBookingBuilder().BuildRequest()))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, gridURL, nil)
		var grid resdto.SlotGridResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &grid)
		require.Equal(s.T(), 1, grid.Occupied)
		for _, slot := range grid.Slots {
			if slot.Slot == "09:00" {
				require.False(s.T(), slot.Available)
				require.Equal(s.T(), "Ana", slot.By)
			} else {
				require.True(s.T(), slot.Available, slot.Slot)
			}
		}
	})

	s.Run("cancel twice warns the second time", func() {
		require.Equal(s.T(), http.StatusCreated, s.create(builder.NewBookingBuilder().BuildRequest()))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingURL, nil)
		var first resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
		require.True(s.T(), first.Removed)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingURL, nil)
		var second resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		require.False(s.T(), second.Removed)
		require.NotEmpty(s.T(), second.Warning)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingURL, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
		require.Zero(s.T(), s.stats().Occupied)
	})

	s.Run("invalid input is rejected", func() {
		bad := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Date = "2024-02-30" }).BuildRequest()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, bad)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date")

		blank := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.By = "   " }).BuildRequest()
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, blank)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "who is booking")

		require.Zero(s.T(), s.stats().Occupied)
	})
}

// =============================================================================
// TestExportAndReset
// =============================================================================

func (s *BookingSuite) TestExportAndReset() {
	s.Run("export is refused while empty", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, exportURL, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "no bookings to export")
	})

	s.Run("export carries every booking", func() {
		require.Equal(s.T(), http.StatusCreated, s.create(builder.NewBookingBuilder().BuildRequest()))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, exportURL, nil)
		require.Equal(s.T(), http.StatusOK, w.Code)
		require.Contains(s.T(), w.Header().Get("Content-Disposition"), "reservas-salas_")

		lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(w.Body.String(), "\uFEFF"), "\n"), "\n")
		require.Len(s.T(), lines, 2)
		require.True(s.T(), strings.HasPrefix(lines[1], "2024-05-01;01/05/2024;09:00;R1;"), lines[1])
	})

	s.Run("wipe needs confirmation", func() {
		require.Equal(s.T(), http.StatusCreated, s.create(builder.NewBookingBuilder().BuildRequest()))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingsURL, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusPreconditionRequired, "confirm=true")
		require.Equal(s.T(), 1, s.stats().Occupied)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingsURL+"?confirm=true", nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		require.Zero(s.T(), s.stats().Occupied)
	})
}

// =============================================================================
// TestStoredState - behaviour against the raw backend
// =============================================================================

func (s *BookingSuite) TestStoredState() {
	ctx := context.Background()

	s.Run("corrupt payload reads as empty and is replaced on the next booking", func() {
		_, err := s.Store.Put(ctx, s.Config.Storage.Key, []byte("{not json"), kv.AnyRevision)
		require.NoError(s.T(), err)

		require.Zero(s.T(), s.stats().Occupied)
		require.Equal(s.T(), http.StatusCreated, s.create(builder.NewBookingBuilder().BuildRequest()))
		require.Equal(s.T(), 1, s.stats().Occupied)
	})

	s.Run("revision advances with every write, wipes included", func() {
		before, err := s.Store.Get(ctx, s.Config.Storage.Key)
		if err != nil {
			require.True(s.T(), infra.IsKind(err, infra.KindNotFound), "%v", err)
		}

		require.Equal(s.T(), http.StatusCreated, s.create(builder.NewBookingBuilder().BuildRequest()))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingURL, nil)
		require.Equal(s.T(), http.StatusOK, w.Code)

		rec, err := s.Store.Get(ctx, s.Config.Storage.Key)
		require.NoError(s.T(), err)
		require.Equal(s.T(), before.Revision+2, rec.Revision)
		require.JSONEq(s.T(), `{}`, string(rec.Value))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingsURL+"?confirm=true", nil)
		require.Equal(s.T(), http.StatusOK, w.Code)
		wiped, err := s.Store.Get(ctx, s.Config.Storage.Key)
		require.NoError(s.T(), err)
		require.Equal(s.T(), rec.Revision+1, wiped.Revision)
		require.Empty(s.T(), wiped.Value)
	})

	s.Run("backend honours expected revisions", func() {
		key := s.Config.Storage.Key + "_contract"
		s.T().Cleanup(func() { _ = s.Store.Delete(ctx, key) })

		_, err := s.Store.Get(ctx, key)
		require.True(s.T(), infra.IsKind(err, infra.KindNotFound), "absent key: %v", err)

		rev, err := s.Store.Put(ctx, key, []byte(`{"a":1}`), 0)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(1), rev)

		_, err = s.Store.Put(ctx, key, []byte(`{"a":2}`), 0)
		require.True(s.T(), infra.IsKind(err, infra.KindConflict), "create over existing key: %v", err)

		rev, err = s.Store.Put(ctx, key, []byte(`{"a":2}`), 1)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(2), rev)

		_, err = s.Store.Put(ctx, key, []byte(`{"a":3}`), 1)
		require.True(s.T(), infra.IsKind(err, infra.KindConflict), "stale revision: %v", err)

		rev, err = s.Store.Put(ctx, key, []byte(`{"a":3}`), kv.AnyRevision)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(3), rev)

		rec, err := s.Store.Get(ctx, key)
		require.NoError(s.T(), err)
		require.Equal(s.T(), kv.Record{Value: []byte(`{"a":3}`), Revision: 3}, rec)

		require.NoError(s.T(), s.Store.Delete(ctx, key))
		rec, err = s.Store.Get(ctx, key)
		require.NoError(s.T(), err)
		require.Empty(s.T(), rec.Value)
		require.Equal(s.T(), int64(4), rec.Revision)

		_, err = s.Store.Put(ctx, key, []byte(`{}`), 0)
		require.True(s.T(), infra.IsKind(err, infra.KindConflict), "revision does not restart after delete: %v", err)
		_, err = s.Store.Put(ctx, key, []byte(`{}`), 3)
		require.True(s.T(), infra.IsKind(err, infra.KindConflict), "pre-delete revision is stale: %v", err)
		rev, err = s.Store.Put(ctx, key, []byte(`{}`), 4)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(5), rev)

		require.NoError(s.T(), s.Store.Delete(ctx, key+"_never"))
		_, err = s.Store.Get(ctx, key+"_never")
		require.True(s.T(), infra.IsKind(err, infra.KindNotFound), "%v", err)
	})
}
