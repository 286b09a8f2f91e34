package components

import (
	"room-booking/internal/infra/kv"
	"room-booking/internal/infra/repository"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewBookingStoreRepository,
		func(r *repository.BookingStoreRepository) shared.BookingStore { return r },
		func(r *repository.BookingStoreRepository) queries.BookingStoreReader { return r },
	),
)

func NewBookingStoreRepository(backend kv.Backend, cfg config.Config) *repository.BookingStoreRepository {
	return repository.NewBookingStoreRepository(backend, cfg.Storage.Key, cfg.Storage.RevisionCheck)
}
