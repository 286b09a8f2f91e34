package shared

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/errs"
)

// ErrStaleRevision is returned by BookingStore.Save when the persisted
// store has been written since the snapshot was loaded.
var ErrStaleRevision = errs.New("stale revision")

// BookingStore persists the whole booking store as one unit.
type BookingStore interface {
	Load(ctx context.Context) (*booking.Snapshot, error)
	Save(ctx context.Context, snap *booking.Snapshot) (int64, error)
	Reset(ctx context.Context) error
}

type ChangeKind string

const (
	ChangeCreated   ChangeKind = "created"
	ChangeCancelled ChangeKind = "cancelled"
	ChangeReset     ChangeKind = "reset"
)

// Change describes one committed mutation. Date, RoomID and Slot are empty for a reset.
type Change struct {
	Kind     ChangeKind `json:"kind"`
	Date     string     `json:"date,omitempty"`
	RoomID   string     `json:"roomId,omitempty"`
	Slot     string     `json:"slot,omitempty"`
	Revision int64      `json:"revision"`
}

// ChangeNotifier is told about every committed mutation. Notify must not block.
type ChangeNotifier interface {
	Notify(change Change)
}

type NopNotifier struct{}

func (NopNotifier) Notify(Change) {}
