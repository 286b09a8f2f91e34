package response

import (
	"room-booking/internal/domain/catalog"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
	Floor    string `json:"floor"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Count int            `json:"count"`
}

type SlotListResponse struct {
	Slots []string `json:"slots"`
}

func FromRooms(rooms []catalog.Room) (*RoomListResponse, error) {
	out := make([]RoomResponse, 0, len(rooms))
	if err := copier.Copy(&out, &rooms); err != nil {
		return nil, err
	}
	if out == nil {
		out = []RoomResponse{}
	}
	return &RoomListResponse{Rooms: out, Count: len(out)}, nil
}
