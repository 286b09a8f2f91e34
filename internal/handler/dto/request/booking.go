package request

import (
	"room-booking/internal/usecase/commands"
)

// Presence of date, room and slot is checked here; their validity and a
// blank reserved-by are the usecase's concern.
type CreateBookingRequest struct {
	Date   string `json:"date" binding:"required"`
	RoomID string `json:"roomId" binding:"required"`
	Slot   string `json:"slot" binding:"required"`
	By     string `json:"by" binding:"max=120"`
	Reason string `json:"reason" binding:"max=500"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		Date:   r.Date,
		RoomID: r.RoomID,
		Slot:   r.Slot,
		By:     r.By,
		Reason: r.Reason,
	}
}

type BookingKeyURI struct {
	Date   string `uri:"date" binding:"required"`
	RoomID string `uri:"roomId" binding:"required"`
	Slot   string `uri:"slot" binding:"required"`
}

func (k BookingKeyURI) ToCancelParams() commands.CancelBookingParams {
	return commands.CancelBookingParams{
		Date:   k.Date,
		RoomID: k.RoomID,
		Slot:   k.Slot,
	}
}

type ResetRequest struct {
	Confirm bool `form:"confirm"`
}
