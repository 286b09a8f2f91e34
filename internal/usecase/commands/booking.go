package commands

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/catalog"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type CreateBookingParams struct {
	Date   string
	RoomID string
	Slot   string
	By     string
	Reason string
}

type CancelBookingParams struct {
	Date   string
	RoomID string
	Slot   string
}

type CreateBookingResult struct {
	Date        string
	RoomID      string
	Slot        string
	Reservation booking.Reservation
	Revision    int64
}

//go:generate mockgen -destination=../../../tests/mock/commands/booking.go -package=commandsmock room-booking/internal/usecase/commands BookingCommands
type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	Cancel(ctx context.Context, params CancelBookingParams) error
	Reset(ctx context.Context, confirmed bool) error
}

type bookingCommandsImpl struct {
	// mu serialises load-modify-save cycles within this process
	mu       sync.Mutex
	store    shared.BookingStore
	catalog  *catalog.Catalog
	notifier shared.ChangeNotifier
	clock    clock.Clock
}

func NewBookingCommands(
	store shared.BookingStore,
	cat *catalog.Catalog,
	notifier shared.ChangeNotifier,
	clk clock.Clock,
) BookingCommands {
	if notifier == nil {
		notifier = shared.NopNotifier{}
	}
	return &bookingCommandsImpl{
		store:    store,
		catalog:  cat,
		notifier: notifier,
		clock:    clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	by := strings.TrimSpace(params.By)
	reason := strings.TrimSpace(params.Reason)

	if err := c.validateKey(params.Date, params.RoomID, params.Slot); err != nil {
		return nil, err
	}
	if by == "" {
		return nil, errs.ErrReservedByRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, taken := snap.Store.Get(params.Date, params.RoomID, params.Slot); taken {
		return nil, errs.ErrSlotTaken
	}

	res := booking.Reservation{
		By:        by,
		Reason:    reason,
		CreatedAt: clock.UnixMilli(c.clock),
	}
	snap.Store.Set(params.Date, params.RoomID, params.Slot, res)

	rev, err := c.save(ctx, snap)
	if err != nil {
		return nil, err
	}

	slog.Info("booking created",
		"date", params.Date, "room", params.RoomID, "slot", params.Slot, "revision", rev)
	c.notifier.Notify(shared.Change{
		Kind:     shared.ChangeCreated,
		Date:     params.Date,
		RoomID:   params.RoomID,
		Slot:     params.Slot,
		Revision: rev,
	})

	return &CreateBookingResult{
		Date:        params.Date,
		RoomID:      params.RoomID,
		Slot:        params.Slot,
		Reservation: res,
		Revision:    rev,
	}, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, params CancelBookingParams) error {
	if params.Date == "" || params.RoomID == "" || params.Slot == "" {
		return errs.ErrInvalidSelection
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	if !snap.Store.Remove(params.Date, params.RoomID, params.Slot) {
		return errs.ErrAlreadyRemoved
	}

	rev, err := c.save(ctx, snap)
	if err != nil {
		return err
	}

	slog.Info("booking cancelled",
		"date", params.Date, "room", params.RoomID, "slot", params.Slot, "revision", rev)
	c.notifier.Notify(shared.Change{
		Kind:     shared.ChangeCancelled,
		Date:     params.Date,
		RoomID:   params.RoomID,
		Slot:     params.Slot,
		Revision: rev,
	})
	return nil
}

func (c *bookingCommandsImpl) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return errs.ErrConfirmationRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Reset(ctx); err != nil {
		return err
	}

	slog.Warn("all bookings removed")
	c.notifier.Notify(shared.Change{Kind: shared.ChangeReset})
	return nil
}

func (c *bookingCommandsImpl) validateKey(date, roomID, slot string) error {
	if date == "" || roomID == "" || slot == "" {
		return errs.ErrInvalidSelection
	}
	if !booking.ValidDate(date) {
		return errs.Wrapf(errs.ErrInvalidDate, "date %q", date)
	}
	if _, ok := c.catalog.Room(roomID); !ok {
		return errs.Wrapf(errs.ErrInvalidSelection, "unknown room %q", roomID)
	}
	if !c.catalog.HasSlot(slot) {
		return errs.Wrapf(errs.ErrInvalidSelection, "unknown slot %q", slot)
	}
	return nil
}

func (c *bookingCommandsImpl) save(ctx context.Context, snap *booking.Snapshot) (int64, error) {
	rev, err := c.store.Save(ctx, snap)
	if err != nil {
		if errs.Is(err, shared.ErrStaleRevision) {
			slog.Warn("booking store changed since it was loaded", "revision", snap.Revision)
			return 0, errs.Mark(err, errs.ErrStaleData)
		}
		return 0, err
	}
	return rev, nil
}
