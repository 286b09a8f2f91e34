package repository

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/kv"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

// BookingStoreRepository keeps the whole booking store under a single key.
type BookingStoreRepository struct {
	backend       kv.Backend
	key           string
	revisionCheck bool
}

func NewBookingStoreRepository(backend kv.Backend, key string, revisionCheck bool) *BookingStoreRepository {
	return &BookingStoreRepository{
		backend:       backend,
		key:           key,
		revisionCheck: revisionCheck,
	}
}

// Load fails open: an absent or unreadable payload is an empty store.
// Only a failing backend is reported.
func (r *BookingStoreRepository) Load(ctx context.Context) (*booking.Snapshot, error) {
	rec, err := r.backend.Get(ctx, r.key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &booking.Snapshot{Store: booking.NewStore()}, nil
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to load bookings"), errs.ErrStorageUnavailable)
	}
	if len(rec.Value) == 0 {
		// wiped; the revision carries on from before the wipe
		return &booking.Snapshot{Store: booking.NewStore(), Revision: rec.Revision}, nil
	}

	store, report := booking.Decode(rec.Value)
	switch {
	case report.Corrupt:
		slog.Warn("stored bookings are unreadable, starting from an empty store",
			"key", r.key, "revision", rec.Revision, "bytes", len(rec.Value))
	case report.Dropped > 0:
		slog.Warn("skipped malformed booking entries",
			"key", r.key, "revision", rec.Revision, "dropped", report.Dropped)
	}
	return &booking.Snapshot{Store: store, Revision: rec.Revision}, nil
}

// Save overwrites the persisted store with snap.Store and returns the new revision.
func (r *BookingStoreRepository) Save(ctx context.Context, snap *booking.Snapshot) (int64, error) {
	payload, err := snap.Store.MarshalJSON()
	if err != nil {
		return 0, errs.Wrap(err, "failed to encode bookings")
	}

	expected := kv.AnyRevision
	if r.revisionCheck {
		expected = snap.Revision
	}

	rev, err := r.backend.Put(ctx, r.key, payload, expected)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return 0, errs.Mark(err, shared.ErrStaleRevision)
		}
		return 0, errs.Mark(errs.Wrap(err, "failed to save bookings"), errs.ErrStorageUnavailable)
	}
	return rev, nil
}

// Reset clears every booking. The revision keeps counting, so snapshots
// loaded before the wipe stay stale.
func (r *BookingStoreRepository) Reset(ctx context.Context) error {
	if err := r.backend.Delete(ctx, r.key); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to reset bookings"), errs.ErrStorageUnavailable)
	}
	return nil
}
