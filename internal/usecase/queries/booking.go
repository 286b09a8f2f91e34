package queries

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/catalog"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/report"
)

// BookingStoreReader is the read half of shared.BookingStore.
type BookingStoreReader interface {
	Load(ctx context.Context) (*booking.Snapshot, error)
}

type SlotView struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
	By        string `json:"by,omitempty"`
}

type SlotGridView struct {
	Date     string           `json:"date"`
	RoomID   string           `json:"roomId"`
	RoomName string           `json:"roomName"`
	Slots    []SlotView       `json:"slots"`
	Stats    booking.DayStats `json:"stats"`
}

type DayStatsView struct {
	Date      string `json:"date"`
	Occupied  int    `json:"occupied"`
	Available int    `json:"available"`
	Capacity  int    `json:"capacity"`
}

type BookingView struct {
	Date             string `json:"date"`
	Slot             string `json:"slot"`
	RoomID           string `json:"roomId"`
	RoomName         string `json:"roomName"`
	By               string `json:"by"`
	Reason           string `json:"reason"`
	CreatedAt        int64  `json:"createdAt"`
	CreatedAtDisplay string `json:"createdAtDisplay"`
}

type ExportFile struct {
	Filename string
	Content  []byte
}

//go:generate mockgen -destination=../../../tests/mock/queries/booking.go -package=queriesmock room-booking/internal/usecase/queries BookingQueries
type BookingQueries interface {
	Rooms(ctx context.Context, q string) []catalog.Room
	Slots(ctx context.Context) []string
	SlotGrid(ctx context.Context, date, roomID string) (*SlotGridView, error)
	DayStats(ctx context.Context, date string) (*DayStatsView, error)
	DayBookings(ctx context.Context, date string) ([]BookingView, error)
	Booking(ctx context.Context, date, roomID, slot string) (*BookingView, error)
	ExportCSV(ctx context.Context) (*ExportFile, error)
}

type bookingQueriesImpl struct {
	store   BookingStoreReader
	catalog *catalog.Catalog
	display booking.Display
	clock   clock.Clock
}

func NewBookingQueries(
	store BookingStoreReader,
	cat *catalog.Catalog,
	display booking.Display,
	clk clock.Clock,
) BookingQueries {
	return &bookingQueriesImpl{
		store:   store,
		catalog: cat,
		display: display,
		clock:   clk,
	}
}

func (q *bookingQueriesImpl) Rooms(_ context.Context, query string) []catalog.Room {
	return q.catalog.Search(query)
}

func (q *bookingQueriesImpl) Slots(_ context.Context) []string {
	return q.catalog.Slots()
}

func (q *bookingQueriesImpl) SlotGrid(ctx context.Context, date, roomID string) (*SlotGridView, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	room, ok := q.catalog.Room(roomID)
	if !ok {
		return nil, errs.Wrapf(errs.ErrInvalidSelection, "unknown room %q", roomID)
	}

	snap, err := q.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	slots := q.catalog.Slots()
	view := &SlotGridView{
		Date:     date,
		RoomID:   room.ID,
		RoomName: room.Name,
		Slots:    make([]SlotView, 0, len(slots)),
		Stats:    snap.Store.DayStats(date, q.catalog.Capacity()),
	}
	for _, slot := range slots {
		sv := SlotView{Slot: slot, Available: true}
		if r, taken := snap.Store.Get(date, room.ID, slot); taken {
			sv.Available = false
			sv.By = r.By
		}
		view.Slots = append(view.Slots, sv)
	}
	return view, nil
}

func (q *bookingQueriesImpl) DayStats(ctx context.Context, date string) (*DayStatsView, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	snap, err := q.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	capacity := q.catalog.Capacity()
	stats := snap.Store.DayStats(date, capacity)
	return &DayStatsView{
		Date:      date,
		Occupied:  stats.Occupied,
		Available: stats.Available,
		Capacity:  capacity,
	}, nil
}

func (q *bookingQueriesImpl) DayBookings(ctx context.Context, date string) ([]BookingView, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	snap, err := q.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	entries := snap.Store.Day(date)
	views := make([]BookingView, 0, len(entries))
	for _, e := range entries {
		views = append(views, q.toView(date, e.RoomID, e.Slot, e.Reservation))
	}
	return views, nil
}

func (q *bookingQueriesImpl) Booking(ctx context.Context, date, roomID, slot string) (*BookingView, error) {
	snap, err := q.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	r, ok := snap.Store.Get(date, roomID, slot)
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	view := q.toView(date, roomID, slot, r)
	return &view, nil
}

func (q *bookingQueriesImpl) ExportCSV(ctx context.Context) (*ExportFile, error) {
	snap, err := q.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	content, err := report.Render(snap.Store.ExportRows(q.catalog, q.display))
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename: report.Filename(q.display, q.clock.Now()),
		Content:  content,
	}, nil
}

func (q *bookingQueriesImpl) toView(date, roomID, slot string, r booking.Reservation) BookingView {
	return BookingView{
		Date:             date,
		Slot:             slot,
		RoomID:           roomID,
		RoomName:         q.catalog.RoomName(roomID),
		By:               r.By,
		Reason:           r.Reason,
		CreatedAt:        r.CreatedAt,
		CreatedAtDisplay: q.display.Timestamp(r.CreatedAt),
	}
}

func validateDate(date string) error {
	if !booking.ValidDate(date) {
		return errs.Wrapf(errs.ErrInvalidDate, "date %q", date)
	}
	return nil
}
