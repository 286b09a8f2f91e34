//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
)

type BookingBuilder struct {
	Date      string
	RoomID    string
	RoomName  string
	Slot      string
	By        string
	Reason    string
	CreatedAt time.Time
	Revision  int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Date:      "2024-05-01",
		RoomID:    "R1",
		RoomName:  "Sala de Reunião 1",
		Slot:      "09:00",
		By:        "Ana",
		Reason:    "weekly sync",
		CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Revision:  1,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildReservation() booking.Reservation {
	return booking.Reservation{
		By:        b.By,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt.UnixMilli(),
	}
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Date:   b.Date,
		RoomID: b.RoomID,
		Slot:   b.Slot,
		By:     b.By,
		Reason: b.Reason,
	}
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return b.BuildRequest().ToParams()
}

func (b *BookingBuilder) BuildResult() *commands.CreateBookingResult {
	return &commands.CreateBookingResult{
		Date:        b.Date,
		RoomID:      b.RoomID,
		Slot:        b.Slot,
		Reservation: b.BuildReservation(),
		Revision:    b.Revision,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		Date:             b.Date,
		Slot:             b.Slot,
		RoomID:           b.RoomID,
		RoomName:         b.RoomName,
		By:               b.By,
		Reason:           b.Reason,
		CreatedAt:        b.CreatedAt.UnixMilli(),
		CreatedAtDisplay: b.CreatedAt.Format("02/01/2006 15:04"),
	}
}

// Seed stores the booking in s, for tests that start from existing data.
func (b *BookingBuilder) Seed(s *booking.Store) *booking.Store {
	s.Set(b.Date, b.RoomID, b.Slot, b.BuildReservation())
	return s
}
