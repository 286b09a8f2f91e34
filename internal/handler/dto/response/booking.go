package response

import (
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	Date             string `json:"date"`
	Slot             string `json:"slot"`
	RoomID           string `json:"roomId"`
	RoomName         string `json:"roomName"`
	By               string `json:"by"`
	Reason           string `json:"reason"`
	CreatedAt        int64  `json:"createdAt"`
	CreatedAtDisplay string `json:"createdAtDisplay"`
}

type DayBookingsResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

type CreateBookingResponse struct {
	Date      string `json:"date"`
	RoomID    string `json:"roomId"`
	Slot      string `json:"slot"`
	By        string `json:"by"`
	Reason    string `json:"reason"`
	CreatedAt int64  `json:"createdAt"`
	Revision  int64  `json:"revision"`
}

type CancelBookingResponse struct {
	Removed bool   `json:"removed"`
	Warning string `json:"warning,omitempty"`
}

type ResetResponse struct {
	Cleared bool `json:"cleared"`
}

type SlotResponse struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
	By        string `json:"by,omitempty"`
}

type DayStatsResponse struct {
	Date      string `json:"date"`
	Occupied  int    `json:"occupied"`
	Available int    `json:"available"`
	Capacity  int    `json:"capacity"`
}

type SlotGridResponse struct {
	Date      string         `json:"date"`
	RoomID    string         `json:"roomId"`
	RoomName  string         `json:"roomName"`
	Slots     []SlotResponse `json:"slots"`
	Occupied  int            `json:"occupied"`
	Available int            `json:"available"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var out BookingResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromDayBookings(date string, views []queries.BookingView) (*DayBookingsResponse, error) {
	out := make([]BookingResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	if out == nil {
		out = []BookingResponse{}
	}
	return &DayBookingsResponse{Date: date, Bookings: out}, nil
}

func FromCreateResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Date:      r.Date,
		RoomID:    r.RoomID,
		Slot:      r.Slot,
		By:        r.Reservation.By,
		Reason:    r.Reservation.Reason,
		CreatedAt: r.Reservation.CreatedAt,
		Revision:  r.Revision,
	}
}

func FromDayStats(v *queries.DayStatsView) *DayStatsResponse {
	return &DayStatsResponse{
		Date:      v.Date,
		Occupied:  v.Occupied,
		Available: v.Available,
		Capacity:  v.Capacity,
	}
}

func FromSlotGrid(v *queries.SlotGridView) *SlotGridResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{Slot: s.Slot, Available: s.Available, By: s.By}
	}
	return &SlotGridResponse{
		Date:      v.Date,
		RoomID:    v.RoomID,
		RoomName:  v.RoomName,
		Slots:     slots,
		Occupied:  v.Stats.Occupied,
		Available: v.Stats.Available,
	}
}
